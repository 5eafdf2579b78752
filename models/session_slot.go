package models

import (
	"database/sql"
	"errors"
)

// ErrSlotNotFound is returned when a session has no value stored under
// the requested slot.
var ErrSlotNotFound = errors.New("session slot not found")

// SessionSlotModel persists named state slots per session between
// interactions. A session maps to one Discord channel.
type SessionSlotModel struct {
	DB *sql.DB
}

func NewSessionSlotModel(db *sql.DB) *SessionSlotModel {
	return &SessionSlotModel{
		DB: db,
	}
}

func (m *SessionSlotModel) Get(sessionID, slot string) ([]byte, error) {
	var value []byte
	q := "SELECT value FROM session_slots WHERE session_id = ? AND slot = ?"
	err := m.DB.QueryRow(q, sessionID, slot).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (m *SessionSlotModel) Set(sessionID, slot string, value []byte) error {
	q := `
		INSERT INTO session_slots (session_id, slot, value) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE value = VALUES(value)`
	_, err := m.DB.Exec(q, sessionID, slot, value)
	return err
}

func (m *SessionSlotModel) Delete(sessionID, slot string) error {
	q := "DELETE FROM session_slots WHERE session_id = ? AND slot = ?"
	_, err := m.DB.Exec(q, sessionID, slot)
	return err
}

// Reset drops every slot the session owns.
func (m *SessionSlotModel) Reset(sessionID string) error {
	q := "DELETE FROM session_slots WHERE session_id = ?"
	_, err := m.DB.Exec(q, sessionID)
	return err
}
