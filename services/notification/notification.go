package notification

import (
	"fmt"

	"github.com/leenx3/Stayease-hotel/dto"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// EventBuilder dựng payload JSON cho sự kiện booking
type EventBuilder struct {
	event dto.BookingEvent
}

func NewEventBuilder(event string) *EventBuilder {
	return &EventBuilder{event: dto.BookingEvent{Event: event}}
}

func (b *EventBuilder) WithBooking(booking dto.LatestBooking) *EventBuilder {
	b.event.Booking = &booking
	return b
}

func (b *EventBuilder) WithIDs(ids ...uint) *EventBuilder {
	b.event.IDs = append(b.event.IDs, ids...)
	return b
}

func (b *EventBuilder) Build() (string, error) {
	payload, err := json.Marshal(b.event)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
