//go:build unit

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotesUpdate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("absent notes leave the column untouched", func(t *testing.T) {
		setNotes, notes := notesUpdate(nil)

		assert.False(t, setNotes)
		assert.False(t, notes.Valid)
	})

	t.Run("empty notes clear the column to NULL", func(t *testing.T) {
		setNotes, notes := notesUpdate(strPtr(""))

		assert.True(t, setNotes)
		assert.False(t, notes.Valid)
	})

	t.Run("non-empty notes replace the column", func(t *testing.T) {
		setNotes, notes := notesUpdate(strPtr("payment received"))

		assert.True(t, setNotes)
		assert.True(t, notes.Valid)
		assert.Equal(t, "payment received", notes.String)
	})
}
