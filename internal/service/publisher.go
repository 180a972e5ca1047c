//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=../mocks/mock_publisher.go -package=mocks
package service

import (
	"context"

	"amassah-lodge-go/pkg/tasks"
)

// InquiryPublisher 把新的咨询交给前台处理流程。Kafka 生产者和进程内处理器都实现了它。
type InquiryPublisher interface {
	Publish(ctx context.Context, task tasks.InquiryTask) error
}
