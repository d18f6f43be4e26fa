package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartStrict(t *testing.T) {
	start, err := ParseStart("24/12/2020 20:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 12, 24, 20, 0, 0, 0, time.UTC), start)

	for _, bad := range []string{
		"33/22/2020 40:73",
		"2020-12-24 20:00",
		"24/12/2020",
		"",
	} {
		_, err := ParseStart(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestMeetingJSONRoundTrip(t *testing.T) {
	m := Meeting{
		ID:       7,
		Title:    "standup",
		Start:    time.Date(2020, 12, 24, 20, 0, 0, 0, time.UTC),
		Duration: 30,
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"start":"24/12/2020 20:00"`)
	assert.Contains(t, string(data), `"guests":[]`)

	var back Meeting
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m.Title, back.Title)
	assert.True(t, m.Start.Equal(back.Start))
	assert.Equal(t, m.Duration, back.Duration)
}

func TestRoomJSONNeverNullMeetings(t *testing.T) {
	data, err := json.Marshal(Room{ID: 1, Name: "blue"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"meetings":[]`)
}
