// Package pipeline 定义了咨询任务的处理流程。
package pipeline

import (
	"context"
	"fmt"

	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/internal/repository"
	"amassah-lodge-go/pkg/log"
	"amassah-lodge-go/pkg/tasks"
)

// Processor 把新的预订咨询和反馈通知前台，并把记录标记为已受理。
type Processor struct {
	inquiryRepo repository.InquiryRepository
}

// NewProcessor 创建一个新的 Processor 实例。
func NewProcessor(inquiryRepo repository.InquiryRepository) *Processor {
	return &Processor{inquiryRepo: inquiryRepo}
}

// Process 处理一个咨询任务。
func (p *Processor) Process(ctx context.Context, task tasks.InquiryTask) error {
	log.Infow("[Processor] 通知前台: 新的咨询",
		"kind", task.Kind,
		"id", task.ID,
		"name", task.Name,
		"email", task.Email,
		"summary", task.Summary,
	)

	var err error
	switch task.Kind {
	case tasks.KindReservation:
		err = p.inquiryRepo.UpdateReservationStatus(ctx, task.ID, model.InquiryStatusAcknowledged)
	case tasks.KindFeedback:
		err = p.inquiryRepo.UpdateFeedbackStatus(ctx, task.ID, model.InquiryStatusAcknowledged)
	default:
		return fmt.Errorf("unknown inquiry kind %q", task.Kind)
	}
	if err != nil {
		log.Errorf("[Processor] 更新咨询状态失败, Key: %s, Error: %v", task.Key(), err)
		return err
	}

	log.Infof("[Processor] 咨询已受理, Key: %s", task.Key())
	return nil
}

// DirectPublisher 在 Kafka 未启用时直接在进程内处理任务。
type DirectPublisher struct {
	processor *Processor
}

// NewDirectPublisher 创建一个新的 DirectPublisher。
func NewDirectPublisher(processor *Processor) *DirectPublisher {
	return &DirectPublisher{processor: processor}
}

// Publish 同步处理任务。
func (d *DirectPublisher) Publish(ctx context.Context, task tasks.InquiryTask) error {
	return d.processor.Process(ctx, task)
}
