package mesher

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/hpinc/go3mf"
)

// metaNamespace is the namespace used for the library's own metadata
// records, such as persisted mesh identifiers.
const metaNamespace = "resin"

// MetaData is one namespaced metadata record of the container.
// MustPreserve is advisory: it asks consumers not to prune the record
// when unreferenced and has no effect on export or import semantics.
type MetaData struct {
	Namespace    string
	Name         string
	Value        string
	Type         string
	MustPreserve bool
}

// AddMetaData appends a metadata record to the container model.
func (m *Mesher) AddMetaData(namespace, name, value, metadataType string, mustPreserve bool) {
	m.model.Metadata = append(m.model.Metadata, go3mf.Metadata{
		Name:     metaName(namespace, name),
		Value:    value,
		Type:     metadataType,
		Preserve: mustPreserve,
	})
}

// metaName builds the stored metadata name. Namespaced records are
// stored as a literal prefixed local name with no XML namespace: an
// unregistered namespace prefix does not survive an encode/decode
// cycle, while a literal name round-trips unchanged.
func metaName(namespace, name string) xml.Name {
	if namespace == "" {
		return xml.Name{Local: name}
	}
	return xml.Name{Local: namespace + ":" + name}
}

// splitMetaName recovers the namespace and name of a stored record.
// Files produced by other tools may carry a resolved XML namespace
// instead of a prefixed local name; both forms are accepted.
func splitMetaName(n xml.Name) (namespace, name string) {
	if n.Space != "" {
		return n.Space, n.Local
	}
	if i := strings.IndexByte(n.Local, ':'); i >= 0 {
		return n.Local[:i], n.Local[i+1:]
	}
	return "", n.Local
}

// MetaData returns all metadata records in insertion order.
func (m *Mesher) MetaData() []MetaData {
	out := make([]MetaData, len(m.model.Metadata))
	for i, md := range m.model.Metadata {
		ns, name := splitMetaName(md.Name)
		out[i] = MetaData{
			Namespace:    ns,
			Name:         name,
			Value:        md.Value,
			Type:         md.Type,
			MustPreserve: md.Preserve,
		}
	}
	return out
}

// MetaDataByKey returns the metadata record with the given namespace
// and name, and whether one exists.
func (m *Mesher) MetaDataByKey(namespace, name string) (MetaData, bool) {
	for _, md := range m.model.Metadata {
		if ns, local := splitMetaName(md.Name); ns == namespace && local == name {
			return MetaData{
				Namespace:    namespace,
				Name:         name,
				Value:        md.Value,
				Type:         md.Type,
				MustPreserve: md.Preserve,
			}, true
		}
	}
	return MetaData{}, false
}

// uuidMetaName is the metadata name under which a mesh object's
// identifier is persisted, keyed by the object's resource id.
func uuidMetaName(objectID uint32) string {
	return fmt.Sprintf("uuid-%d", objectID)
}
