package k8s

import (
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/fields"
)

// Event is the subset of a cluster event that kge renders. Produced fresh
// on every query, never persisted.
type Event struct {
	Namespace string     `json:"namespace"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Reason    string     `json:"reason"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	Count     int32      `json:"count,omitempty"`
	Source    string     `json:"source,omitempty"`
	FirstSeen *time.Time `json:"firstSeen,omitempty"`
	LastSeen  *time.Time `json:"lastSeen,omitempty"`
}

// IsNormal reports whether the event carries Normal severity
func (e Event) IsNormal() bool {
	return e.Type == corev1.EventTypeNormal
}

// eventFieldSelector builds the server-side filter for an event listing.
// Predicates are joined as a comma conjunction on the wire.
func eventFieldSelector(name string, nonNormalOnly bool) string {
	var selectors []fields.Selector
	if name != "" {
		selectors = append(selectors, fields.OneTermEqualSelector("involvedObject.name", name))
	}
	if nonNormalOnly {
		selectors = append(selectors, fields.OneTermNotEqualSelector("type", corev1.EventTypeNormal))
	}
	if len(selectors) == 0 {
		return ""
	}
	return fields.AndSelectors(selectors...).String()
}

// convertEvent maps a corev1 event onto the kge event record. Zero
// timestamps from the API become nil so the formatter can sort them last.
func convertEvent(e corev1.Event) Event {
	event := Event{
		Namespace: e.Namespace,
		Name:      e.InvolvedObject.Name,
		Kind:      e.InvolvedObject.Kind,
		Reason:    e.Reason,
		Message:   e.Message,
		Type:      e.Type,
		Count:     e.Count,
		Source:    e.Source.Component,
	}
	if !e.FirstTimestamp.IsZero() {
		t := e.FirstTimestamp.Time
		event.FirstSeen = &t
	}
	if !e.LastTimestamp.IsZero() {
		t := e.LastTimestamp.Time
		event.LastSeen = &t
	}
	return event
}
