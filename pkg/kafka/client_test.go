package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"amassah-lodge-go/pkg/tasks"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
}

func (f *fakeReader) FetchMessage(_ context.Context) (kafka.Message, error) {
	if len(f.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := f.messages[0]
	f.messages = f.messages[1:]
	return m, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	f.committed = append(f.committed, msgs...)
	return nil
}

func (f *fakeReader) Close() error { return nil }

type recordingProcessor struct {
	err  error
	seen []tasks.InquiryTask
}

func (p *recordingProcessor) Process(_ context.Context, task tasks.InquiryTask) error {
	p.seen = append(p.seen, task)
	return p.err
}

func taskMessage(t *testing.T, task tasks.InquiryTask) kafka.Message {
	value, err := json.Marshal(task)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(task.Key()), Value: value}
}

func TestConsume(t *testing.T) {
	task := tasks.InquiryTask{Kind: tasks.KindReservation, ID: 7}

	t.Run("should commit processed messages", func(t *testing.T) {
		req := require.New(t)
		r := &fakeReader{messages: []kafka.Message{taskMessage(t, task)}}
		p := &recordingProcessor{}

		consume(context.Background(), r, p, NewMemoryAttemptCounter())

		req.Len(p.seen, 1)
		req.Equal(uint(7), p.seen[0].ID)
		req.Len(r.committed, 1)
	})

	t.Run("should commit and skip malformed messages", func(t *testing.T) {
		req := require.New(t)
		r := &fakeReader{messages: []kafka.Message{{Value: []byte("not json")}}}
		p := &recordingProcessor{}

		consume(context.Background(), r, p, NewMemoryAttemptCounter())

		req.Empty(p.seen)
		req.Len(r.committed, 1)
	})

	t.Run("should give up after three failed attempts", func(t *testing.T) {
		req := require.New(t)
		m := taskMessage(t, task)
		r := &fakeReader{messages: []kafka.Message{m, m, m}}
		p := &recordingProcessor{err: errors.New("database down")}
		counter := NewMemoryAttemptCounter()

		consume(context.Background(), r, p, counter)

		req.Len(p.seen, 3)
		req.Len(r.committed, 1)
	})
}

func TestBrokerList(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"a:9092", "b:9092"}, brokerList("a:9092, b:9092,"))
	req.Nil(brokerList(""))
}
