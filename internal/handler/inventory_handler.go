package handler

import (
	"amassah-lodge-go/internal/service"
	"amassah-lodge-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// InventoryHandler 提供管理员库存看板。
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler 创建一个新的 InventoryHandler 实例。
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Report 返回过滤后的库存列表和全量统计。
func (h *InventoryHandler) Report(c *gin.Context) {
	report := h.inventoryService.Report(service.InventoryFilter{
		Search: c.Query("q"),
		Status: c.Query("status"),
		Type:   c.Query("type"),
	})
	respondOK(c, report)
}

// Export 把一份库存报表上传到对象存储，并返回限时下载链接。
func (h *InventoryHandler) Export(c *gin.Context) {
	result, err := h.inventoryService.Export(c.Request.Context())
	if err != nil {
		log.Errorf("[InventoryHandler] 导出库存报表失败: %v", err)
		respondError(c, err, "导出库存报表失败")
		return
	}
	respondOK(c, result)
}
