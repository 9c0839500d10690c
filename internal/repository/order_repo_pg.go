package repository

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository only ever reads orders of one owner.
type OrderRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error)
	// Create inserts the order owned by order.UserID and all its tickets in one
	// transaction, then reloads the tickets' flights.
	Create(ctx context.Context, order *domain.Order) error
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func loadOrders(ctx context.Context, q querier, where string, args ...any) ([]domain.Order, error) {
	rows, err := q.Query(ctx, `SELECT id, user_id, created_at FROM orders `+where+` ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]int64, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	type ticketRow struct {
		orderID  int64
		flightID int64
		ticket   domain.Ticket
	}
	ticketRows, err := q.Query(ctx, `SELECT id, order_id, flight_id, row, seat FROM tickets WHERE order_id = ANY($1) ORDER BY id`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer ticketRows.Close()

	var tickets []ticketRow
	flightSet := make(map[int64]struct{})
	for ticketRows.Next() {
		var t ticketRow
		if err := ticketRows.Scan(&t.ticket.ID, &t.orderID, &t.flightID, &t.ticket.Row, &t.ticket.Seat); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
		flightSet[t.flightID] = struct{}{}
	}
	ticketRows.Close()
	if err := ticketRows.Err(); err != nil {
		return nil, err
	}

	flightIDs := make([]int64, 0, len(flightSet))
	for id := range flightSet {
		flightIDs = append(flightIDs, id)
	}
	flights, err := loadFlights(ctx, q, `WHERE f.id = ANY($1)`, flightIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Flight, len(flights))
	for _, f := range flights {
		byID[f.ID] = f
	}

	for _, t := range tickets {
		t.ticket.Flight = byID[t.flightID]
		i := index[t.orderID]
		orders[i].Tickets = append(orders[i].Tickets, t.ticket)
	}
	return orders, nil
}

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := loadOrders(ctx, r.db, `WHERE user_id = $1`, userID)
	if err != nil {
		return nil, sqlerr.Handle(err, "orders")
	}
	return orders, nil
}

func (r *PGOrderRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error) {
	orders, err := loadOrders(ctx, r.db, `WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return nil, sqlerr.Handle(err, "orders")
	}
	if len(orders) == 0 {
		return nil, sqlerr.Handle(pgx.ErrNoRows, "orders")
	}
	return &orders[0], nil
}

func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`, order.UserID).
			Scan(&order.ID, &order.CreatedAt); err != nil {
			return err
		}
		for i := range order.Tickets {
			t := &order.Tickets[i]
			if err := tx.QueryRow(ctx, `INSERT INTO tickets (order_id, flight_id, row, seat) VALUES ($1, $2, $3, $4) RETURNING id`,
				order.ID, t.Flight.ID, t.Row, t.Seat).Scan(&t.ID); err != nil {
				return err
			}
		}

		loaded, err := loadOrders(ctx, tx, `WHERE id = $1`, order.ID)
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return pgx.ErrNoRows
		}
		*order = loaded[0]
		return nil
	})
	return sqlerr.Handle(err, "orders")
}

var _ OrderRepository = (*PGOrderRepository)(nil)
