package k8s

import (
	"testing"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestEventFieldSelector(t *testing.T) {
	cases := []struct {
		name          string
		object        string
		nonNormalOnly bool
		want          string
	}{
		{"namespace scan", "", false, ""},
		{"single pod", "b", false, "involvedObject.name=b"},
		{"pod exceptions only", "b", true, "involvedObject.name=b,type!=Normal"},
		{"namespace exceptions only", "", true, "type!=Normal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := eventFieldSelector(tc.object, tc.nonNormalOnly)
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestConvertEvent(t *testing.T) {
	last := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	event := convertEvent(corev1.Event{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default"},
		InvolvedObject: corev1.ObjectReference{
			Name: "web-0",
			Kind: "Pod",
		},
		Reason:        "BackOff",
		Message:       "Back-off restarting failed container",
		Type:          corev1.EventTypeWarning,
		Count:         4,
		Source:        corev1.EventSource{Component: "kubelet"},
		LastTimestamp: metav1.NewTime(last),
	})

	if event.Namespace != "default" || event.Name != "web-0" || event.Kind != "Pod" {
		t.Errorf("Unexpected involved object mapping: %+v", event)
	}
	if event.Reason != "BackOff" || event.Type != corev1.EventTypeWarning {
		t.Errorf("Unexpected reason/type mapping: %+v", event)
	}
	if event.Count != 4 || event.Source != "kubelet" {
		t.Errorf("Unexpected count/source mapping: %+v", event)
	}
	if event.IsNormal() {
		t.Error("Expected a Warning event to not be Normal")
	}
	if event.LastSeen == nil || !event.LastSeen.Equal(last) {
		t.Errorf("Expected last seen %v, got %v", last, event.LastSeen)
	}
	if event.FirstSeen != nil {
		t.Errorf("Expected nil first seen for a zero timestamp, got %v", event.FirstSeen)
	}
}
