package synthview

type (
	//Layout defines container member names
	Layout struct {
		Optional    OptionalLayout    `yaml:"optional"`
		SmallVector SmallVectorLayout `yaml:"smallVector"`
		Variant     VariantLayout     `yaml:"variant"`
		MultiIndex  MultiIndexLayout  `yaml:"multiIndex"`
	}

	OptionalLayout struct {
		Initialized string `yaml:"initialized"`
		Storage     string `yaml:"storage"`
	}

	SmallVectorLayout struct {
		Holder string `yaml:"holder"`
		Size   string `yaml:"size"`
		Start  string `yaml:"start"`
	}

	VariantLayout struct {
		Which   string `yaml:"which"`
		Storage string `yaml:"storage"`
	}

	MultiIndexLayout struct {
		NodeCount string `yaml:"nodeCount"`
	}
)

// DefaultLayout returns boost containers layout
func DefaultLayout() Layout {
	return Layout{
		Optional:    OptionalLayout{Initialized: "m_initialized", Storage: "m_storage"},
		SmallVector: SmallVectorLayout{Holder: "m_holder", Size: "m_size", Start: "m_start"},
		Variant:     VariantLayout{Which: "which_", Storage: "storage_"},
		MultiIndex:  MultiIndexLayout{NodeCount: "node_count"},
	}
}

// Init sets default member names for unspecified ones
func (l *Layout) Init() {
	defaults := DefaultLayout()
	setIfEmpty(&l.Optional.Initialized, defaults.Optional.Initialized)
	setIfEmpty(&l.Optional.Storage, defaults.Optional.Storage)
	setIfEmpty(&l.SmallVector.Holder, defaults.SmallVector.Holder)
	setIfEmpty(&l.SmallVector.Size, defaults.SmallVector.Size)
	setIfEmpty(&l.SmallVector.Start, defaults.SmallVector.Start)
	setIfEmpty(&l.Variant.Which, defaults.Variant.Which)
	setIfEmpty(&l.Variant.Storage, defaults.Variant.Storage)
	setIfEmpty(&l.MultiIndex.NodeCount, defaults.MultiIndex.NodeCount)
}

func setIfEmpty(target *string, value string) {
	if *target == "" {
		*target = value
	}
}
