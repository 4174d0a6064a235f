package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"rhplus/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewEvent(t *testing.T) {
	event, err := kafka.NewEvent("req-1", "payroll_entry", "entry-1", "payroll_entry_created", "hr.payroll.lifecycle.v1", map[string]string{"entry_id": "entry-1"})

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.Equal(t, "entry-1", event.AggregateID)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "entry-1", payload["entry_id"])
	assert.NoError(t, kafka.ValidateOutboxEvent(event))
}

func TestOutboxRepository_CreateUsesTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	event, err := kafka.NewEvent("", "payroll_period", "period-1", "payroll_period_closed", "hr.payroll.lifecycle.v1", map[string]string{})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(event.ID, event.RequestID, event.AggregateType, event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalidEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	err = repo.Create(context.Background(), kafka.OutboxEvent{ID: "x", Topic: "t", Status: kafka.OutboxStatusPending})

	assert.EqualError(t, err, "outbox payload is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
		AddRow("e1", "r1", "payroll_entry", "a1", "payroll_entry_created", "hr.payroll.lifecycle.v1", []byte(`{}`), kafka.OutboxStatusPending, 0, now)
	mock.ExpectQuery("FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	repo := kafka.NewOutboxRepository(db)
	events, err := repo.ListPending(context.Background(), 10)

	assert.NoError(t, err)
	if assert.Len(t, events, 1) {
		assert.Equal(t, "r1", events[0].RequestID)
		assert.Equal(t, "a1", events[0].AggregateID)
		assert.True(t, events[0].NextRetryAt.Equal(now))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
