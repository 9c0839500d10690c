package orders

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/Domenick1991/airport-service/internal/kafka"
	"github.com/Domenick1991/airport-service/internal/repository"
	"github.com/Domenick1991/airport-service/internal/validation"
	"github.com/rs/zerolog"
)

// OrderUseCase is always scoped to the calling identity: orders of other
// users are invisible and ownership is never taken from the payload.
type OrderUseCase interface {
	List(ctx context.Context, identity domain.Identity) ([]domain.Order, error)
	GetByID(ctx context.Context, identity domain.Identity, id int64) (*domain.Order, error)
	Create(ctx context.Context, identity domain.Identity, input CreateOrderInput) (*domain.Order, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type TicketInput struct {
	Row    int   `json:"row" validate:"gt=0"`
	Seat   int   `json:"seat" validate:"gt=0"`
	Flight int64 `json:"flight" validate:"gt=0"`
}

type CreateOrderInput struct {
	Tickets []TicketInput `json:"tickets" validate:"required,min=1,dive"`
}

type OrderService struct {
	orders   repository.OrderRepository
	flights  repository.FlightRepository
	producer Producer
	topic    string
	log      zerolog.Logger
}

type OrderServiceOption func(*OrderService)

func WithLogger(log zerolog.Logger) OrderServiceOption {
	return func(s *OrderService) {
		s.log = log
	}
}

// NewOrderService builds the service. With a nil producer no events are
// published.
func NewOrderService(
	orders repository.OrderRepository,
	flights repository.FlightRepository,
	producer Producer,
	topic string,
	opts ...OrderServiceOption,
) *OrderService {
	s := &OrderService{
		orders:   orders,
		flights:  flights,
		producer: producer,
		topic:    topic,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *OrderService) List(ctx context.Context, identity domain.Identity) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, identity.UserID)
}

func (s *OrderService) GetByID(ctx context.Context, identity domain.Identity, id int64) (*domain.Order, error) {
	return s.orders.GetByIDForUser(ctx, id, identity.UserID)
}

func (s *OrderService) Create(ctx context.Context, identity domain.Identity, input CreateOrderInput) (*domain.Order, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := s.validateTickets(ctx, input.Tickets); err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:  identity.UserID,
		Tickets: make([]domain.Ticket, 0, len(input.Tickets)),
	}
	for _, t := range input.Tickets {
		order.Tickets = append(order.Tickets, domain.Ticket{
			Row:    t.Row,
			Seat:   t.Seat,
			Flight: domain.Flight{ID: t.Flight},
		})
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publishCreated(ctx, identity, order)
	return order, nil
}

type seatKey struct {
	flight    int64
	row, seat int
}

// validateTickets rejects unknown flights, seats outside the airplane layout
// and the same seat requested twice in one order.
func (s *OrderService) validateTickets(ctx context.Context, tickets []TicketInput) error {
	flights := make(map[int64]*domain.Flight)
	seats := make(map[seatKey]int, len(tickets))

	for i, t := range tickets {
		flight, ok := flights[t.Flight]
		if !ok {
			loaded, err := s.flights.GetByID(ctx, t.Flight)
			if errs.Is(err, errs.KindNotFound) {
				return errs.Field(fmt.Sprintf("tickets[%d].flight", i), "The referenced flight does not exist")
			}
			if err != nil {
				return err
			}
			flights[t.Flight] = loaded
			flight = loaded
		}

		if err := validation.ValidateTicket(i, t.Row, t.Seat, flight.Airplane.Rows, flight.Airplane.SeatsInRow); err != nil {
			return err
		}

		key := seatKey{flight: t.Flight, row: t.Row, seat: t.Seat}
		if first, dup := seats[key]; dup {
			return errs.Field(fmt.Sprintf("tickets[%d]", i),
				fmt.Sprintf("duplicates the seat of tickets[%d]", first))
		}
		seats[key] = i
	}
	return nil
}

func (s *OrderService) publishCreated(ctx context.Context, identity domain.Identity, order *domain.Order) {
	if s.producer == nil {
		return
	}

	event := kafka.OrderEvent{
		Type:      kafka.EventOrderCreated,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Email:     identity.Email,
		Tickets:   make([]kafka.Ticket, 0, len(order.Tickets)),
		CreatedAt: order.CreatedAt,
	}
	for _, t := range order.Tickets {
		event.Tickets = append(event.Tickets, kafka.Ticket{
			FlightID: t.Flight.ID,
			Flight:   t.Flight.Label(),
			Row:      t.Row,
			Seat:     t.Seat,
		})
	}

	if err := s.producer.Publish(ctx, s.topic, strconv.FormatInt(order.ID, 10), event); err != nil {
		s.log.Warn().Err(err).Int64("order_id", order.ID).Msg("failed to publish order_created")
	}
}

var _ OrderUseCase = (*OrderService)(nil)
