package bloom

import "testing"

func TestInjectClick(t *testing.T) {
	s := NewScene()
	s.InjectClick(10, 20)
	if s.PendingInjections() != 2 {
		t.Fatalf("PendingInjections = %d, want 2", s.PendingInjections())
	}
	press, release := s.injectQueue[0], s.injectQueue[1]
	if !press.pressed || press.x != 10 || press.y != 20 || press.button != MouseButtonLeft {
		t.Errorf("press = %+v", press)
	}
	if release.pressed {
		t.Error("second event should be a release")
	}
}

func TestProcessInjectedInput(t *testing.T) {
	s := NewScene()
	var clicks int
	s.Root().AddChild(clickable("box", 0, 0, 50, 50, &clicks))
	s.InjectClick(25, 25)

	if !s.processInjectedInput() {
		t.Fatal("press should be consumed")
	}
	if clicks != 0 {
		t.Error("click should fire on release")
	}
	if !s.processInjectedInput() {
		t.Fatal("release should be consumed")
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if s.PendingInjections() != 0 {
		t.Errorf("PendingInjections = %d, want 0", s.PendingInjections())
	}
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	s := NewScene()
	if s.processInjectedInput() {
		t.Error("empty queue should report false")
	}
}

func TestInjectQueueOrder(t *testing.T) {
	s := NewScene()
	s.InjectPress(1, 1)
	s.InjectRelease(2, 2)
	s.InjectClick(3, 3)

	want := []float64{1, 2, 3, 3}
	for i, w := range want {
		if s.injectQueue[i].x != w {
			t.Errorf("event %d x = %v, want %v", i, s.injectQueue[i].x, w)
		}
	}
}
