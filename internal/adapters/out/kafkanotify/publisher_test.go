package kafkanotify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type writerMock struct {
	mock.Mock
}

func (m *writerMock) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

type PublisherSuite struct {
	suite.Suite
	wm *writerMock
	p  *Publisher
}

func (s *PublisherSuite) SetupTest() {
	s.wm = &writerMock{}
	s.p = newPublisherWithWriter(s.wm, "parcel-events")
}

func (s *PublisherSuite) TestNewPublisher_NotNil() {
	p := NewPublisher([]string{"localhost:0"}, "parcel-events")
	s.Require().NotNil(p)
}

func (s *PublisherSuite) TestPublishParcelCreated_OK() {
	aggregate := newTestParcel(s.T())

	s.wm.
		On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
			if len(msgs) != 1 {
				return false
			}
			msg := msgs[0]
			if msg.Topic != "parcel-events" || string(msg.Key) != aggregate.TrackingNumber().String() {
				return false
			}

			var event parcelEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return false
			}
			return event.Event == "parcel.created" &&
				event.ParcelID == aggregate.ID().String() &&
				event.Status == "pending"
		})).
		Return(nil).
		Once()

	s.Require().NoError(s.p.PublishParcelCreated(context.Background(), aggregate))
	s.wm.AssertExpectations(s.T())
}

func (s *PublisherSuite) TestPublishParcelStatusChanged_OK() {
	aggregate := newTestParcel(s.T())
	s.Require().NoError(aggregate.ChangeStatus(parcel.PickedUp, time.Now().UTC(), "Status updated by admin"))

	s.wm.
		On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
			if len(msgs) != 1 {
				return false
			}
			var event parcelEvent
			if err := json.Unmarshal(msgs[0].Value, &event); err != nil {
				return false
			}
			return event.Event == "parcel.status_changed" && event.Status == "picked_up"
		})).
		Return(nil).
		Once()

	s.Require().NoError(s.p.PublishParcelStatusChanged(context.Background(), aggregate))
	s.wm.AssertExpectations(s.T())
}

func (s *PublisherSuite) TestPublish_ErrorWrapped() {
	aggregate := newTestParcel(s.T())

	want := errors.New("boom")
	s.wm.On("WriteMessages", mock.Anything, mock.Anything).Return(want).Once()

	err := s.p.PublishParcelCreated(context.Background(), aggregate)
	s.Require().Error(err)
	s.Require().Contains(err.Error(), "kafka publish")
	s.wm.AssertExpectations(s.T())
}

func (s *PublisherSuite) TestPublish_InvalidParcel_ReturnsError() {
	err := s.p.PublishParcelCreated(context.Background(), &parcel.Parcel{})
	s.Require().Error(err)
	s.wm.AssertNotCalled(s.T(), "WriteMessages", mock.Anything, mock.Anything)
}

func TestPublisherSuite(t *testing.T) {
	suite.Run(t, new(PublisherSuite))
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher()

	assert.NoError(t, p.PublishParcelCreated(t.Context(), newTestParcel(t)))
	assert.NoError(t, p.PublishParcelStatusChanged(t.Context(), newTestParcel(t)))
}

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	senderName, err := kernel.NewPersonName("Alice Mwangi")
	require.NoError(t, err)
	receiverName, err := kernel.NewPersonName("Brian Otieno")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+254 712 345 678")
	require.NoError(t, err)
	sender, err := parcel.NewParty(senderName, phone)
	require.NoError(t, err)
	receiver, err := parcel.NewParty(receiverName, phone)
	require.NoError(t, err)
	pickup, err := kernel.NewAddress("12 Moi Avenue, Nairobi")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("34 Kenyatta Road, Mombasa")
	require.NoError(t, err)

	now := time.Now().UTC()
	aggregate, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.NewTrackingNumber(now),
		kernel.NewUUID(),
		sender,
		receiver,
		pickup,
		destination,
		3,
		615,
		now,
	)
	require.NoError(t, err)
	return aggregate
}
