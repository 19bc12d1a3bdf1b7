package synthview

import (
	"fmt"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"regexp"
)

const (
	KindOptional    = "optional"
	KindSmallVector = "smallVector"
	KindVariant     = "variant"
	KindMultiIndex  = "multiIndex"
)

type (
	//Config represents provider bindings table with container layout
	Config struct {
		Bindings []*BindingConfig `yaml:"bindings"`
		Layout   Layout           `yaml:"layout"`
	}

	//BindingConfig binds provider kind with type name pattern
	BindingConfig struct {
		Kind    string `yaml:"kind"`
		Pattern string `yaml:"pattern"`
	}
)

var kindFactories = map[string]func(opts []Option) Factory{
	KindOptional: func(opts []Option) Factory {
		return func(value Value) Provider { return NewOptional(value, opts...) }
	},
	KindSmallVector: func(opts []Option) Factory {
		return func(value Value) Provider { return NewSmallVector(value, opts...) }
	},
	KindVariant: func(opts []Option) Factory {
		return func(value Value) Provider { return NewVariant(value, opts...) }
	},
	KindMultiIndex: func(opts []Option) Factory {
		return func(value Value) Provider { return NewMultiIndex(value, opts...) }
	},
}

// DefaultConfig returns boost containers bindings
func DefaultConfig() *Config {
	return &Config{
		Bindings: []*BindingConfig{
			{Kind: KindOptional, Pattern: `^boost::optional<.+>$`},
			{Kind: KindSmallVector, Pattern: `^boost::container::small_vector<.+>$`},
			{Kind: KindVariant, Pattern: `^boost::variant<.+>$`},
			{Kind: KindMultiIndex, Pattern: `^boost::multi_index::multi_index_container<.+>$`},
		},
		Layout: DefaultLayout(),
	}
}

// LoadConfig parses YAML config, unspecified bindings and member names use boost defaults
func LoadConfig(data []byte) (*Config, error) {
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(ret.Bindings) == 0 {
		ret.Bindings = DefaultConfig().Bindings
	}
	ret.Layout.Init()
	return ret, ret.Validate()
}

// Validate checks binding kinds and patterns
func (c *Config) Validate() error {
	for i, binding := range c.Bindings {
		if binding == nil {
			return fmt.Errorf("binding[%v] was empty", i)
		}
		if _, ok := kindFactories[binding.Kind]; !ok {
			return fmt.Errorf("binding[%v]: unsupported kind %q", i, binding.Kind)
		}
		if _, err := regexp.Compile(binding.Pattern); err != nil {
			return fmt.Errorf("binding[%v]: invalid pattern %q: %w", i, binding.Pattern, err)
		}
	}
	return nil
}

// Register binds configured providers with supplied registrar
func (c *Config) Register(registrar Registrar, opts ...Option) error {
	if err := c.Validate(); err != nil {
		return err
	}
	opts = append(append([]Option{}, opts...), WithLayout(c.Layout))
	logger := newOptions(opts).logger
	for _, binding := range c.Bindings {
		factory := kindFactories[binding.Kind](opts)
		if err := registrar.AddSynthetic(binding.Pattern, factory); err != nil {
			return fmt.Errorf("failed to register %v provider: %w", binding.Kind, err)
		}
		logger.Debug("bound synthetic provider", zap.String("kind", binding.Kind), zap.String("pattern", binding.Pattern))
	}
	return nil
}
