package main

import (
	"net/http"
	"strconv"
	"time"

	"hms/src/common"
	"hms/src/types"

	"github.com/gin-gonic/gin"
)

func reportRange(ctx *gin.Context) (time.Time, time.Time, bool) {
	var query types.ReportRangeQuery
	if err := ctx.BindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, time.Time{}, false
	}
	end := common.Today()
	start := end.AddDate(0, 0, -30)
	if query.StartDate != "" {
		parsed, err := common.ParseDate(query.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return time.Time{}, time.Time{}, false
		}
		start = parsed
	}
	if query.EndDate != "" {
		parsed, err := common.ParseDate(query.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return time.Time{}, time.Time{}, false
		}
		end = parsed
	}
	if end.Before(start) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func reportHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/reports/occupancy", func(ctx *gin.Context) {
			start, end, ok := reportRange(ctx)
			if !ok {
				return
			}
			report, err := common.BuildOccupancyReport(start, end)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": report})
		}).
		GET("/reports/revenue", func(ctx *gin.Context) {
			start, end, ok := reportRange(ctx)
			if !ok {
				return
			}
			report, err := common.BuildRevenueReport(start, end)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": report})
		}).
		GET("/reports/guests", func(ctx *gin.Context) {
			limit := 20
			if v := ctx.Query("limit"); v != "" {
				parsed, err := strconv.Atoi(v)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				limit = parsed
			}
			rows, err := common.BuildGuestHistoryReport(limit)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rows, "count": len(rows)})
		})
	return g
}
