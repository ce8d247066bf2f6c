package bubbletea_test

import (
	"testing"

	"github.com/revetio/revet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	t.Parallel()

	keymap := bubbletea.DefaultKeyMap()

	t.Run("binds submit to ctrl+s", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, keymap.Submit.Keys(), "ctrl+s")
	})

	t.Run("binds tab switching to ctrl+t", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, keymap.SwitchTab.Keys(), "ctrl+t")
	})

	t.Run("binds sample insertion to ctrl+n", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, keymap.Sample.Keys(), "ctrl+n")
	})

	t.Run("binds field navigation to tab and shift+tab", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, keymap.NextField.Keys(), "tab")
		assert.Contains(t, keymap.PrevField.Keys(), "shift+tab")
	})

	t.Run("every binding has help text", func(t *testing.T) {
		t.Parallel()

		bindings := []struct {
			name string
			keys []string
			help string
		}{
			{"SwitchTab", keymap.SwitchTab.Keys(), keymap.SwitchTab.Help().Desc},
			{"NextField", keymap.NextField.Keys(), keymap.NextField.Help().Desc},
			{"PrevField", keymap.PrevField.Keys(), keymap.PrevField.Help().Desc},
			{"Submit", keymap.Submit.Keys(), keymap.Submit.Help().Desc},
			{"Sample", keymap.Sample.Keys(), keymap.Sample.Help().Desc},
			{"ScrollUp", keymap.ScrollUp.Keys(), keymap.ScrollUp.Help().Desc},
			{"ScrollDown", keymap.ScrollDown.Keys(), keymap.ScrollDown.Help().Desc},
			{"Quit", keymap.Quit.Keys(), keymap.Quit.Help().Desc},
		}
		for _, b := range bindings {
			assert.NotEmpty(t, b.keys, "%s has no keys", b.name)
			assert.NotEmpty(t, b.help, "%s has no help", b.name)
		}
	})
}
