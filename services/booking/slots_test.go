package booking

import (
	"encoding/json"
	"testing"

	"broheal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestNormalizeSlotsBareTime(t *testing.T) {
	slots := NormalizeSlots([]models.RawSlot{{Time: "09:00"}})
	require.Len(t, slots, 1)

	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)
	assert.True(t, slots[0].Available)
}

func TestNormalizeSlotsStatusShape(t *testing.T) {
	slots := NormalizeSlots([]models.RawSlot{
		{SlotTime: "10:30", Status: "available"},
		{SlotTime: "11:30", Status: "booked"},
	})
	require.Len(t, slots, 2)

	assert.Equal(t, "10:30", slots[0].Time)
	assert.Equal(t, "11:30", slots[0].EndTime)
	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
}

func TestNormalizeSlotsAvailableShape(t *testing.T) {
	slots := NormalizeSlots([]models.RawSlot{
		{Time: "14:00", Available: boolPtr(false)},
		{Time: "15:00", Available: boolPtr(true)},
	})
	require.Len(t, slots, 2)

	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}

func TestNormalizeSlotsDedupeFirstWins(t *testing.T) {
	slots := NormalizeSlots([]models.RawSlot{
		{Time: "09:00", Available: boolPtr(true)},
		{SlotTime: "09:00", Status: "booked"},
	})
	require.Len(t, slots, 1)
	assert.True(t, slots[0].Available, "first occurrence should win")
}

func TestNormalizeSlotsSortsAndSkipsMalformed(t *testing.T) {
	slots := NormalizeSlots([]models.RawSlot{
		{Time: "15:00"},
		{Time: "nonsense"},
		{Time: "09:00"},
		{},
	})
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "15:00", slots[1].Time)
}

func TestNormalizeSlotsKeepsExplicitEndTime(t *testing.T) {
	slots := NormalizeSlots([]models.RawSlot{
		{StartTime: "18:00", EndTime: "18:45"},
	})
	require.Len(t, slots, 1)
	assert.Equal(t, "18:00", slots[0].Time)
	assert.Equal(t, "18:45", slots[0].EndTime)
}

func TestNormalizeSlotsWrapsPastMidnight(t *testing.T) {
	slots := NormalizeSlots([]models.RawSlot{{Time: "23:30"}})
	require.Len(t, slots, 1)
	assert.Equal(t, "00:30", slots[0].EndTime)
}

func TestNormalizeSlotsMixedShapesFromJSON(t *testing.T) {
	payload := `["09:00", {"slotTime":"10:00","status":"booked"}, {"time":"11:00","available":true}]`
	var raw []models.RawSlot
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	slots := NormalizeSlots(raw)
	require.Len(t, slots, 3)
	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestApplyBookedAndFilterAvailable(t *testing.T) {
	slots := NormalizeSlots(slotsFromTimes([]string{"09:00", "10:00", "11:00"}))
	slots = applyBooked(slots, map[string]bool{"10:00": true})

	available := FilterAvailable(slots)
	require.Len(t, available, 2)
	assert.Equal(t, "09:00", available[0].Time)
	assert.Equal(t, "11:00", available[1].Time)
}

func TestParseClock(t *testing.T) {
	min, ok := parseClock("09:30")
	assert.True(t, ok)
	assert.Equal(t, 9*60+30, min)

	for _, bad := range []string{"", "9", "25:00", "09:75", "ab:cd"} {
		_, ok := parseClock(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}
