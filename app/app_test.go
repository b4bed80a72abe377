package app

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestGet(t *testing.T) {
	railfocusApp := Get()

	if railfocusApp.Name != "railfocus" {
		t.Errorf("unexpected app name: %s", railfocusApp.Name)
	}

	dump := spew.Sdump(railfocusApp)

	for _, cmd := range []string{"stats", "history", "stations", "edit-config"} {
		if !strings.Contains(dump, cmd) {
			t.Errorf("expected the %s command to be registered", cmd)
		}
	}
}
