package mail

import (
	"testing"

	"github.com/e-Xiua/admin-events-api/services"
)

func TestComposeNotification_Cancellation(t *testing.T) {
	subject, body := composeNotification(services.NotificationCommand{
		EventTitle: "Launch",
		Intent:     services.IntentCancellation,
	})
	if subject != "Event Cancelled" {
		t.Errorf("unexpected subject %q", subject)
	}
	want := "We regret to inform you that the event Launch was cancelled."
	if body != want {
		t.Errorf("unexpected body %q", body)
	}
}

func TestComposeNotification_Modification(t *testing.T) {
	subject, body := composeNotification(services.NotificationCommand{
		EventTitle: "Launch",
		Intent:     services.IntentModification,
	})
	if subject != "Event Modified" {
		t.Errorf("unexpected subject %q", subject)
	}
	want := "Dear user, please be advised that the event Launch was modified.\nThank you."
	if body != want {
		t.Errorf("unexpected body %q", body)
	}
}
