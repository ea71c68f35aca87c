package payment

import (
	"errors"
	"testing"

	conversationRepo "broheal/database/repository/conversation"
	therapistRepo "broheal/database/repository/therapist"
	"broheal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTherapists struct {
	therapistRepo.TherapistRepository
	t   *models.Therapist
	err error
}

func (s *stubTherapists) GetByID(id string) (*models.Therapist, error) {
	return s.t, s.err
}

type stubConversations struct {
	conversationRepo.ConversationRepository
	existing *models.Conversation
	created  []*models.Conversation
}

func (s *stubConversations) GetByBookingID(bookingID string) (*models.Conversation, error) {
	return s.existing, nil
}

func (s *stubConversations) Create(c *models.Conversation) error {
	s.created = append(s.created, c)
	return nil
}

func testBooking() *models.Booking {
	return &models.Booking{ID: "b1", UserID: "u1", TherapistID: "t1"}
}

func TestOpenConversationCreatesThread(t *testing.T) {
	convs := &stubConversations{}
	svc := &DefaultPaymentService{
		TherapistRepo:    &stubTherapists{t: &models.Therapist{ID: "t1", UserID: "tu1"}},
		ConversationRepo: convs,
	}

	svc.openConversation(testBooking())

	require.Len(t, convs.created, 1)
	assert.Equal(t, "b1", convs.created[0].BookingID)
	assert.Equal(t, []string{"u1", "tu1"}, convs.created[0].Participants)
}

func TestOpenConversationSkipsUnresolvedTherapist(t *testing.T) {
	cases := []struct {
		name      string
		therapist *stubTherapists
	}{
		{"lookup error", &stubTherapists{err: errors.New("transient")}},
		{"missing profile", &stubTherapists{}},
		{"profile without user", &stubTherapists{t: &models.Therapist{ID: "t1"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			convs := &stubConversations{}
			svc := &DefaultPaymentService{
				TherapistRepo:    tc.therapist,
				ConversationRepo: convs,
			}

			svc.openConversation(testBooking())

			assert.Empty(t, convs.created)
		})
	}
}

func TestOpenConversationIsIdempotent(t *testing.T) {
	convs := &stubConversations{existing: &models.Conversation{ID: "c1", BookingID: "b1"}}
	svc := &DefaultPaymentService{
		TherapistRepo:    &stubTherapists{t: &models.Therapist{ID: "t1", UserID: "tu1"}},
		ConversationRepo: convs,
	}

	svc.openConversation(testBooking())

	assert.Empty(t, convs.created)
}
