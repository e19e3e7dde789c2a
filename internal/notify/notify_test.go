package notify

import "testing"

func TestUrgencyValues(t *testing.T) {
	// Values are fixed by the freedesktop protocol.
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestNotificationZeroValue(t *testing.T) {
	var n Notification
	if n.Urgency != UrgencyLow {
		t.Errorf("zero value Urgency = %d, want UrgencyLow (0)", n.Urgency)
	}
	if n.Timeout != 0 {
		t.Error("zero value Timeout should be 0 (never expire)")
	}
	if n.ReplacesID != 0 {
		t.Error("zero value ReplacesID should be 0 (new notification)")
	}
}

type recordingNotifier struct {
	sent   []Notification
	nextID uint32
}

func (r *recordingNotifier) Notify(n Notification) (uint32, error) {
	r.sent = append(r.sent, n)
	r.nextID++
	return r.nextID, nil
}

func (r *recordingNotifier) Close(uint32) error { return nil }

func TestNotice(t *testing.T) {
	n := Notice("Share failed: no clipboard", "/music/cover.jpg")
	if n.Body != "Share failed: no clipboard" || n.Icon != "/music/cover.jpg" {
		t.Errorf("Notice() = %+v", n)
	}
	if n.Timeout != NoticeTimeout || n.Urgency != UrgencyLow {
		t.Errorf("Notice() timeout/urgency = %d/%d", n.Timeout, n.Urgency)
	}
}

func TestForwarder_ReplacesPrevious(t *testing.T) {
	rec := &recordingNotifier{}
	f := NewForwarder(rec)

	if err := f.Forward("one", ""); err != nil {
		t.Fatal(err)
	}
	if err := f.Forward("two", ""); err != nil {
		t.Fatal(err)
	}
	if err := f.Forward("", ""); err != nil {
		t.Fatal(err)
	}

	if len(rec.sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(rec.sent))
	}
	if rec.sent[0].ReplacesID != 0 {
		t.Errorf("first ReplacesID = %d, want 0", rec.sent[0].ReplacesID)
	}
	if rec.sent[1].ReplacesID != 1 {
		t.Errorf("second ReplacesID = %d, want 1", rec.sent[1].ReplacesID)
	}
}

func TestDiscard(t *testing.T) {
	id, err := Discard.Notify(Notice("x", ""))
	if id != 0 || err != nil {
		t.Errorf("Discard.Notify() = %d, %v", id, err)
	}
	if err := NewForwarder(Discard).Forward("x", ""); err != nil {
		t.Errorf("Forward() to Discard error: %v", err)
	}
}

func TestForwarder_Nil(t *testing.T) {
	var f *Forwarder
	if err := f.Forward("x", ""); err != nil {
		t.Errorf("nil Forward() error: %v", err)
	}
	if err := NewForwarder(nil).Forward("x", ""); err != nil {
		t.Errorf("Forward() without notifier error: %v", err)
	}
}
