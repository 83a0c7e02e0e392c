package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/SR3DR3/planncomm-v2/internal/health"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// MonitoringHandler exposes process and host statistics for the ops
// dashboard.
type MonitoringHandler struct {
	Checker   *health.HealthChecker
	DBPath    string
	startedAt time.Time
}

func NewMonitoringHandler(checker *health.HealthChecker, dbPath string) *MonitoringHandler {
	return &MonitoringHandler{
		Checker:   checker,
		DBPath:    dbPath,
		startedAt: time.Now(),
	}
}

type SystemStats struct {
	CPUPercent    float64               `json:"cpu_percent"`
	MemoryPercent float64               `json:"memory_percent"`
	MemoryUsed    string                `json:"memory_used"`
	MemoryTotal   string                `json:"memory_total"`
	DiskPercent   float64               `json:"disk_percent"`
	DiskUsed      string                `json:"disk_used"`
	DiskTotal     string                `json:"disk_total"`
	Database      DatabaseStats         `json:"database"`
	Uptime        string                `json:"uptime"`
	Health        health.DatabaseHealth `json:"health"`
}

type DatabaseStats struct {
	Path string `json:"path"`
	Size string `json:"size"`
}

func (h *MonitoringHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	cpuPercents, _ := cpu.Percent(0, false)
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")

	dbSize := "unknown"
	if info, err := os.Stat(h.DBPath); err == nil {
		dbSize = formatBytes(uint64(info.Size()))
	}

	status := h.Checker.CheckBasic()

	stats := SystemStats{
		CPUPercent: cpuPercent,
		Database:   DatabaseStats{Path: h.DBPath, Size: dbSize},
		Uptime:     formatUptime(int(time.Since(h.startedAt).Seconds())),
		Health:     status.Database,
	}
	if memStats != nil {
		stats.MemoryPercent = memStats.UsedPercent
		stats.MemoryUsed = formatBytes(memStats.Used)
		stats.MemoryTotal = formatBytes(memStats.Total)
	}
	if diskStats != nil {
		stats.DiskPercent = diskStats.UsedPercent
		stats.DiskUsed = formatBytes(diskStats.Used)
		stats.DiskTotal = formatBytes(diskStats.Total)
	}

	writeJSON(w, http.StatusOK, stats)
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	if gb < 1 {
		mb := float64(bytes) / (1024 * 1024)
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", gb)
}

func formatUptime(seconds int) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
