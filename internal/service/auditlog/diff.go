package auditlog

import (
	"bytes"
	"encoding/json"
)

// Diff reduces two snapshots to the keys whose values differ. Values are
// compared by their JSON encoding, so pointers compare by what they point to.
func Diff(before, after map[string]any) (oldValues, newValues map[string]any) {
	oldValues = make(map[string]any)
	newValues = make(map[string]any)

	for k, nv := range after {
		ov, ok := before[k]
		if ok && sameJSON(ov, nv) {
			continue
		}
		oldValues[k] = ov
		newValues[k] = nv
	}
	for k, ov := range before {
		if _, ok := after[k]; !ok {
			oldValues[k] = ov
			newValues[k] = nil
		}
	}
	return oldValues, newValues
}

func sameJSON(a, b any) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}
