package state

import "github.com/jwebster45206/crampton-estate/pkg/scenario"

type objectKey struct {
	room   string
	object string
}

// ObjectState is the per-session view of a scenario object. The scenario
// object itself never changes.
type ObjectState struct {
	Examined  bool
	Remaining []string // items not yet granted
}

// Object returns the session state of an object, creating it on first use.
func (s *Session) Object(roomID string, obj *scenario.Object) *ObjectState {
	key := objectKey{room: roomID, object: obj.Name}
	if st, ok := s.overlay[key]; ok {
		return st
	}
	st := &ObjectState{Remaining: append([]string(nil), obj.Items...)}
	s.overlay[key] = st
	return st
}

// ObjectDescription returns the text to show for an object: the post-examine
// variant once its items have been taken, the base description otherwise.
func (s *Session) ObjectDescription(roomID string, obj *scenario.Object) string {
	st := s.Object(roomID, obj)
	if st.Examined && obj.ExaminedDescription != "" {
		return obj.ExaminedDescription
	}
	return obj.Description
}

// TakeObjectItems marks the object examined and returns the items it still
// holds. A second call returns nothing.
func (s *Session) TakeObjectItems(roomID string, obj *scenario.Object) []string {
	st := s.Object(roomID, obj)
	items := st.Remaining
	st.Remaining = nil
	if len(items) > 0 {
		st.Examined = true
	}
	return items
}
