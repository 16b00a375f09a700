package httpresp

import "github.com/gin-gonic/gin"

type Pagination struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return Pagination{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

func OK(c *gin.Context, data any) {
	c.JSON(200, gin.H{"data": data})
}

func OKMessage(c *gin.Context, message string, data any) {
	c.JSON(200, gin.H{"message": message, "data": data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(201, gin.H{"message": message, "data": data})
}

func List(c *gin.Context, data any, p Pagination) {
	c.JSON(200, gin.H{"data": data, "pagination": p})
}
