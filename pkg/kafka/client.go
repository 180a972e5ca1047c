// Package kafka 提供了与 Kafka 消息队列交互的功能。
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"amassah-lodge-go/internal/config"
	"amassah-lodge-go/pkg/log"
	"amassah-lodge-go/pkg/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"
)

// maxAttempts 是一条消息最多处理的次数，超过后提交 offset 放弃重试。
const maxAttempts = 3

// TaskProcessor defines the interface for any service that can process a task.
// This decouples the Kafka consumer from the concrete pipeline implementation.
type TaskProcessor interface {
	Process(ctx context.Context, task tasks.InquiryTask) error
}

// Producer 把咨询任务写入 Kafka。
type Producer struct {
	writer *kafka.Writer
}

// NewProducer 初始化 Kafka 生产者。
func NewProducer(cfg config.KafkaConfig) *Producer {
	log.Info("Kafka 生产者初始化成功")
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerList(cfg.Brokers)...),
			Topic:    cfg.Topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish 发送一个咨询任务到 Kafka，以任务 Key 作为消息键。
func (p *Producer) Publish(ctx context.Context, task tasks.InquiryTask) error {
	taskBytes, err := json.Marshal(task)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(task.Key()), Value: taskBytes}); err != nil {
		return fmt.Errorf("failed to publish %s: %w", task.Key(), err)
	}
	return nil
}

// Close 关闭生产者。
func (p *Producer) Close() error {
	return p.writer.Close()
}

// AttemptCounter 记录任务的失败次数。
type AttemptCounter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}

type redisAttemptCounter struct {
	rdb *redis.Client
}

// NewRedisAttemptCounter 使用 Redis 计数失败次数，计数在 24 小时后过期。
func NewRedisAttemptCounter(rdb *redis.Client) AttemptCounter {
	return &redisAttemptCounter{rdb: rdb}
}

func (c *redisAttemptCounter) Incr(ctx context.Context, key string) (int64, error) {
	attemptsKey := fmt.Sprintf("kafka:attempts:%s", key)
	attempts, err := c.rdb.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return 0, err
	}
	_ = c.rdb.Expire(ctx, attemptsKey, 24*time.Hour).Err()
	return attempts, nil
}

func (c *redisAttemptCounter) Reset(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, fmt.Sprintf("kafka:attempts:%s", key)).Err()
}

type memoryAttemptCounter struct {
	mu       sync.Mutex
	attempts map[string]int64
}

// NewMemoryAttemptCounter 返回进程内的失败计数器，Redis 未启用时使用。
func NewMemoryAttemptCounter() AttemptCounter {
	return &memoryAttemptCounter{attempts: make(map[string]int64)}
}

func (c *memoryAttemptCounter) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attempts[key]++
	return c.attempts[key], nil
}

func (c *memoryAttemptCounter) Reset(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.attempts, key)
	return nil
}

// messageReader 是消费者用到的 kafka.Reader 方法。
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// StartConsumer 启动一个 Kafka 消费者来处理咨询任务，ctx 结束时返回。
func StartConsumer(ctx context.Context, cfg config.KafkaConfig, processor TaskProcessor, counter AttemptCounter) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokerList(cfg.Brokers),
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})

	log.Infof("Kafka 消费者已启动，正在监听主题 '%s'", cfg.Topic)
	consume(ctx, r, processor, counter)

	if err := r.Close(); err != nil {
		log.Errorf("关闭 Kafka 消费者失败: %v", err)
	}
}

func consume(ctx context.Context, r messageReader, processor TaskProcessor, counter AttemptCounter) {
	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Error("从 Kafka 读取消息失败", err)
			}
			return
		}
		handleMessage(ctx, r, m, processor, counter)
	}
}

func handleMessage(ctx context.Context, r messageReader, m kafka.Message, processor TaskProcessor, counter AttemptCounter) {
	var task tasks.InquiryTask
	if err := json.Unmarshal(m.Value, &task); err != nil {
		log.Errorf("无法解析 Kafka 消息: %v, value: %s", err, string(m.Value))
		// 消息格式错误，直接提交，避免阻塞队列
		if err := r.CommitMessages(ctx, m); err != nil {
			log.Errorf("提交错误消息失败: %v", err)
		}
		return
	}

	if err := processor.Process(ctx, task); err != nil {
		log.Errorf("处理咨询任务失败: %s, Error: %v", task.Key(), err)
		attempts, incErr := counter.Incr(ctx, task.Key())
		if incErr != nil {
			// 计数失败时不提交 offset，让 Kafka 重试
			return
		}
		if attempts >= maxAttempts {
			log.Errorf("咨询任务多次失败(>=%d)，提交 offset 终止重试: %s", maxAttempts, task.Key())
			if err := r.CommitMessages(ctx, m); err != nil {
				log.Errorf("提交 Kafka 消息 offset 失败: %v", err)
			}
		}
		return
	}

	log.Infof("咨询任务处理成功: %s", task.Key())
	_ = counter.Reset(ctx, task.Key())
	if err := r.CommitMessages(ctx, m); err != nil {
		log.Errorf("提交 Kafka 消息 offset 失败: %v", err)
	}
}

// brokerList 解析逗号分隔的 broker 地址。
func brokerList(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
