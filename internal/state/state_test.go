package state

import "testing"

type fakeState struct {
	name string
	log  *[]string
}

func (f *fakeState) Enter() { *f.log = append(*f.log, "enter "+f.name) }
func (f *fakeState) Update(float64) { *f.log = append(*f.log, "update "+f.name) }
func (f *fakeState) Draw() {}
func (f *fakeState) DrawUI() {}
func (f *fakeState) Exit() { *f.log = append(*f.log, "exit "+f.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(1) // без состояния — no-op

	a := &fakeState{name: "a", log: &log}
	b := &fakeState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(1)
	sm.SetState(b)
	sm.SetState(nil)
	sm.Update(1)

	want := []string{"enter a", "update a", "exit a", "enter b", "exit b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if sm.Current() != nil {
		t.Error("Current() should be nil after SetState(nil)")
	}
}
