package memory

import (
	"encoding/hex"
	"fmt"
	"github.com/francoispqt/gojay"
	"strings"
)

type (
	//Snapshot represents a memory image with type catalog and named variables
	Snapshot struct {
		Space     *Space
		Catalog   *Catalog
		Variables []*Value
	}

	snapshotDocument struct {
		types     typeDocuments
		segments  segmentDocuments
		variables variableDocuments
	}

	typeDocument struct {
		name    string
		size    uint64
		args    names
		members memberDocuments
	}

	memberDocument struct {
		name     string
		offset   uint64
		typeName string
	}

	segmentDocument struct {
		address uint64
		hex     string
	}

	variableDocument struct {
		name     string
		typeName string
		address  uint64
	}

	typeDocuments     []*typeDocument
	memberDocuments   []*memberDocument
	segmentDocuments  []*segmentDocument
	variableDocuments []*variableDocument
	names             []string
)

// Variable returns named variable
func (s *Snapshot) Variable(name string) (*Value, bool) {
	for _, candidate := range s.Variables {
		if candidate.name == name {
			return candidate, true
		}
	}
	return nil, false
}

// LoadSnapshot decodes JSON memory image:
//
//	{
//	  "types": [{"name": "boost::optional<int>", "size": 8, "args": ["int"],
//	             "members": [{"name": "m_initialized", "offset": 0, "type": "bool"}, ...]}],
//	  "segments": [{"address": 4096, "hex": "010000002a000000"}],
//	  "variables": [{"name": "opt", "type": "boost::optional<int>", "address": 4096}]
//	}
func LoadSnapshot(data []byte) (*Snapshot, error) {
	document := &snapshotDocument{}
	if err := gojay.UnmarshalJSONObject(data, document); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	ret := &Snapshot{Space: NewSpace(), Catalog: NewCatalog()}
	for _, aType := range document.types {
		defined, err := aType.build(ret.Catalog)
		if err != nil {
			return nil, err
		}
		ret.Catalog.Define(defined)
	}
	for _, aSegment := range document.segments {
		data, err := hex.DecodeString(strings.Join(strings.Fields(aSegment.hex), ""))
		if err != nil {
			return nil, fmt.Errorf("invalid segment 0x%x data: %w", aSegment.address, err)
		}
		if err = ret.Space.Map(aSegment.address, data); err != nil {
			return nil, err
		}
	}
	for _, variable := range document.variables {
		valueType, err := ret.Catalog.Lookup(variable.typeName)
		if err != nil {
			return nil, fmt.Errorf("invalid variable %v: %w", variable.name, err)
		}
		ret.Variables = append(ret.Variables, ret.Space.Variable(variable.name, variable.address, valueType))
	}
	return ret, nil
}

func (d *typeDocument) build(catalog *Catalog) (*Type, error) {
	if d.name == "" {
		return nil, fmt.Errorf("type name was empty")
	}
	var args []*Type
	for _, name := range d.args {
		arg, err := catalog.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("invalid %v template argument: %w", d.name, err)
		}
		args = append(args, arg)
	}
	var members []*Member
	for _, member := range d.members {
		memberType, err := catalog.Lookup(member.typeName)
		if err != nil {
			return nil, fmt.Errorf("invalid %v.%v: %w", d.name, member.name, err)
		}
		if member.offset+memberType.size > d.size {
			return nil, fmt.Errorf("invalid %v.%v: offset %v + size %v exceeds %v", d.name, member.name, member.offset, memberType.size, d.size)
		}
		members = append(members, &Member{Name: member.name, Offset: member.offset, Type: memberType})
	}
	return NewStruct(d.name, d.size, members, args...), nil
}

func (d *snapshotDocument) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "types":
		return dec.Array(&d.types)
	case "segments":
		return dec.Array(&d.segments)
	case "variables":
		return dec.Array(&d.variables)
	}
	return nil
}

func (d *snapshotDocument) NKeys() int {
	return 0
}

func (d *typeDocument) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "name":
		return dec.String(&d.name)
	case "size":
		return dec.Uint64(&d.size)
	case "args":
		return dec.Array(&d.args)
	case "members":
		return dec.Array(&d.members)
	}
	return nil
}

func (d *typeDocument) NKeys() int {
	return 0
}

func (d *memberDocument) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "name":
		return dec.String(&d.name)
	case "offset":
		return dec.Uint64(&d.offset)
	case "type":
		return dec.String(&d.typeName)
	}
	return nil
}

func (d *memberDocument) NKeys() int {
	return 0
}

func (d *segmentDocument) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "address":
		return dec.Uint64(&d.address)
	case "hex":
		return dec.String(&d.hex)
	}
	return nil
}

func (d *segmentDocument) NKeys() int {
	return 0
}

func (d *variableDocument) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "name":
		return dec.String(&d.name)
	case "type":
		return dec.String(&d.typeName)
	case "address":
		return dec.Uint64(&d.address)
	}
	return nil
}

func (d *variableDocument) NKeys() int {
	return 0
}

func (t *typeDocuments) UnmarshalJSONArray(dec *gojay.Decoder) error {
	item := &typeDocument{}
	if err := dec.Object(item); err != nil {
		return err
	}
	*t = append(*t, item)
	return nil
}

func (m *memberDocuments) UnmarshalJSONArray(dec *gojay.Decoder) error {
	item := &memberDocument{}
	if err := dec.Object(item); err != nil {
		return err
	}
	*m = append(*m, item)
	return nil
}

func (s *segmentDocuments) UnmarshalJSONArray(dec *gojay.Decoder) error {
	item := &segmentDocument{}
	if err := dec.Object(item); err != nil {
		return err
	}
	*s = append(*s, item)
	return nil
}

func (v *variableDocuments) UnmarshalJSONArray(dec *gojay.Decoder) error {
	item := &variableDocument{}
	if err := dec.Object(item); err != nil {
		return err
	}
	*v = append(*v, item)
	return nil
}

func (n *names) UnmarshalJSONArray(dec *gojay.Decoder) error {
	name := ""
	if err := dec.String(&name); err != nil {
		return err
	}
	*n = append(*n, name)
	return nil
}
