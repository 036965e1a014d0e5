package catalog

import (
	"encoding/json"
	"fmt"
)

// Entity is the canonical descriptor envelope of a catalog entity.
type Entity struct {
	APIVersion string         `json:"apiVersion" yaml:"apiVersion" validate:"required"`
	Kind       string         `json:"kind" yaml:"kind" validate:"required"`
	Metadata   *EntityMeta    `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Spec       map[string]any `json:"spec,omitempty" yaml:"spec,omitempty"`
}

// EntityMeta holds the identity and free-form metadata of an entity.
type EntityMeta struct {
	// UID is assigned by the store and is immutable once set
	UID string `json:"uid,omitempty" yaml:"uid,omitempty"`
	// Generation is owned by the store and incremented on every update
	Generation int64 `json:"generation,omitempty" yaml:"generation,omitempty"`

	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Namespace   string            `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Labels      map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`

	// Extra holds every other metadata key, such as description or tags
	Extra map[string]any `json:"-" yaml:",inline"`
}

// entityMetaFields has the fields of EntityMeta without its JSON methods.
type entityMetaFields EntityMeta

// MarshalJSON encodes the known fields and the Extra keys as one object.
// Known fields take precedence over Extra keys of the same name.
func (m EntityMeta) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(entityMetaFields(m))
	if err != nil {
		return nil, err
	}
	if len(m.Extra) == 0 {
		return known, nil
	}

	fields := make(map[string]json.RawMessage, len(m.Extra)+6)
	for k, v := range m.Extra {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("metadata %s: %w", k, err)
		}
		fields[k] = data
	}
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// UnmarshalJSON decodes the known fields and collects the other keys in Extra.
func (m *EntityMeta) UnmarshalJSON(data []byte) error {
	var known entityMetaFields
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, k := range []string{"uid", "generation", "name", "namespace", "labels", "annotations"} {
		delete(fields, k)
	}

	known.Extra = nil
	for k, raw := range fields {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("metadata %s: %w", k, err)
		}
		if known.Extra == nil {
			known.Extra = make(map[string]any, len(fields))
		}
		known.Extra[k] = v
	}

	*m = EntityMeta(known)
	return nil
}

// AddEntityRequest is the input of an add-or-update operation.
type AddEntityRequest struct {
	// LocationID optionally ties the entity to the location it was read from
	LocationID *string
	Entity     Entity
}

// EntityResponse is an entity as persisted by the store.
type EntityResponse struct {
	LocationID *string `json:"locationId,omitempty" yaml:"locationId,omitempty"`
	Entity     Entity  `json:"entity" yaml:"entity"`
}

// Name returns the metadata name, or the empty string if there is no metadata.
func (e Entity) Name() string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata.Name
}

// Namespace returns the metadata namespace, or nil when it is unset.
func (e Entity) Namespace() *string {
	if e.Metadata == nil || e.Metadata.Namespace == "" {
		return nil
	}
	ns := e.Metadata.Namespace
	return &ns
}

// UID returns the metadata uid, or the empty string if none was assigned.
func (e Entity) UID() string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata.UID
}

// Generation returns the metadata generation, 0 when unset.
func (e Entity) Generation() int64 {
	if e.Metadata == nil {
		return 0
	}
	return e.Metadata.Generation
}

// Ref formats the entity as kind:namespace/name, omitting an empty namespace.
func (e Entity) Ref() string {
	if ns := e.Namespace(); ns != nil {
		return fmt.Sprintf("%s:%s/%s", e.Kind, *ns, e.Name())
	}
	return fmt.Sprintf("%s:%s", e.Kind, e.Name())
}

// Validate checks the required fields of the envelope.
func (e Entity) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEntity, err)
	}
	return nil
}
