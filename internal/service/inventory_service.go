package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/pkg/log"

	"github.com/samber/lo"
)

// ErrExportUnavailable 表示对象存储未启用，无法导出报表。
var ErrExportUnavailable = errors.New("report export is not available")

var inventoryStatuses = []string{
	model.RoomStatusAvailable,
	model.RoomStatusBooked,
	model.RoomStatusMaintenance,
	model.RoomStatusCleaning,
}

// ReportUploader 把报表写入对象存储并签发下载链接。
type ReportUploader interface {
	PutJSON(ctx context.Context, objectName string, data []byte) error
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// InventoryFilter 是库存看板的过滤条件。Status 和 Type 为空或 "all" 表示不过滤。
type InventoryFilter struct {
	Search string
	Status string
	Type   string
}

// ExportResult 是导出报表的位置。
type ExportResult struct {
	ObjectName string    `json:"objectName"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// InventoryService 接口定义了库存看板的操作。
type InventoryService interface {
	Report(filter InventoryFilter) *model.InventoryReport
	Export(ctx context.Context) (*ExportResult, error)
}

type inventoryService struct {
	rooms    []model.Room
	uploader ReportUploader
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewInventoryService 创建一个新的 InventoryService 实例。uploader 为 nil 时 Export 返回 ErrExportUnavailable。
// rng 为 nil 时使用随机种子。
func NewInventoryService(rooms []model.Room, uploader ReportUploader, rng *rand.Rand, now func() time.Time) InventoryService {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &inventoryService{rooms: rooms, uploader: uploader, rng: rng, now: now}
}

// Report 为每间客房生成模拟运营数据，返回过滤后的客房和全部客房的统计。
func (s *inventoryService) Report(filter InventoryFilter) *model.InventoryReport {
	all := s.generate()
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	rooms := lo.Filter(all, func(r model.InventoryRoom, _ int) bool {
		matchesSearch := strings.Contains(strings.ToLower(r.Name), search) || strings.Contains(strings.ToLower(r.Type), search)
		matchesStatus := filter.Status == "" || filter.Status == "all" || r.Status == filter.Status
		matchesType := filter.Type == "" || filter.Type == "all" || r.Type == filter.Type
		return matchesSearch && matchesStatus && matchesType
	})
	return &model.InventoryReport{Rooms: rooms, Stats: inventoryStats(all)}
}

func (s *inventoryService) generate() []model.InventoryRoom {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	return lo.Map(s.rooms, func(r model.Room, _ int) model.InventoryRoom {
		lastBooked := now.Add(-time.Duration(s.rng.Int64N(int64(30 * 24 * time.Hour))))
		return model.InventoryRoom{
			Room:          r,
			Bookings:      s.rng.IntN(50) + 10,
			Revenue:       s.rng.IntN(10000) + 5000,
			LastBooked:    model.DateOf(lastBooked),
			Status:        inventoryStatuses[s.rng.IntN(len(inventoryStatuses))],
			OccupancyRate: s.rng.IntN(30) + 70,
		}
	})
}

func inventoryStats(rooms []model.InventoryRoom) model.InventoryStats {
	stats := model.InventoryStats{
		TotalRooms:     len(rooms),
		AvailableRooms: lo.CountBy(rooms, func(r model.InventoryRoom) bool { return r.Status == model.RoomStatusAvailable }),
		BookedRooms:    lo.CountBy(rooms, func(r model.InventoryRoom) bool { return r.Status == model.RoomStatusBooked }),
		TotalRevenue:   lo.SumBy(rooms, func(r model.InventoryRoom) int { return r.Revenue }),
	}
	if len(rooms) > 0 {
		occupancy := lo.SumBy(rooms, func(r model.InventoryRoom) int { return r.OccupancyRate })
		stats.AverageOccupancy = int(math.Round(float64(occupancy) / float64(len(rooms))))
	}
	return stats
}

// Export 把完整报表上传到对象存储，返回一小时有效的下载链接。
func (s *inventoryService) Export(ctx context.Context) (*ExportResult, error) {
	if s.uploader == nil {
		return nil, ErrExportUnavailable
	}

	report := s.Report(InventoryFilter{})
	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory report: %w", err)
	}

	now := s.now()
	objectName := fmt.Sprintf("inventory-reports/%s.json", now.UTC().Format("20060102T150405Z"))
	if err := s.uploader.PutJSON(ctx, objectName, data); err != nil {
		log.Errorf("[InventoryService] 上传库存报表失败: %v", err)
		return nil, err
	}

	const expiry = time.Hour
	url, err := s.uploader.PresignedURL(ctx, objectName, expiry)
	if err != nil {
		return nil, err
	}
	log.Infof("[InventoryService] 库存报表已导出: %s", objectName)
	return &ExportResult{ObjectName: objectName, URL: url, ExpiresAt: now.Add(expiry)}, nil
}
