package mail

import (
	"net/smtp"
	"strings"
	"testing"

	"portfolio-cms/internal/platform/config"
	"portfolio-cms/internal/platform/logging"
)

func newTestLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logger, err := logging.New(logging.Config{Level: "error"})
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	return logger
}

func TestNotifyDisabledIsNoOp(t *testing.T) {
	n := NewNotifier(config.MailConfig{}, newTestLogger(t))
	n.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called when mail is unconfigured")
		return nil
	}

	if err := n.Notify("subject", "body"); err != nil {
		t.Fatalf("Notify error: %v", err)
	}
}

func TestNotifyBuildsMessage(t *testing.T) {
	cfg := config.MailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "bot@example.com",
		Password: "secret",
		From:     "bot@example.com",
		To:       "owner@example.com",
	}

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	n := NewNotifier(cfg, newTestLogger(t))
	n.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := n.Notify("Portfolio Contact: Hello", "Name: Alice"); err != nil {
		t.Fatalf("Notify error: %v", err)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Errorf("unexpected addr %q", gotAddr)
	}
	if gotFrom != "bot@example.com" || len(gotTo) != 1 || gotTo[0] != "owner@example.com" {
		t.Errorf("unexpected envelope: from=%q to=%v", gotFrom, gotTo)
	}
	body := string(gotMsg)
	if !strings.Contains(body, "Subject: Portfolio Contact: Hello") {
		t.Errorf("message missing subject header: %q", body)
	}
	if !strings.Contains(body, "Name: Alice") {
		t.Errorf("message missing body: %q", body)
	}
}
