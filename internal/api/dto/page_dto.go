package dto

// ==================== 分页 ====================

// PageQuery 分页查询参数，name 为前缀过滤
type PageQuery struct {
	PageNo   int    `form:"pageNo,default=1"`
	PageSize int    `form:"pageSize,default=10" binding:"omitempty,min=1,max=100"`
	Name     string `form:"name"`
}

// PageResult 分页结果，Total 为过滤后的总数而非当前页条数
type PageResult struct {
	Records  interface{} `json:"records"`
	Total    int64       `json:"total"`
	PageNo   int         `json:"pageNo"`
	PageSize int         `json:"pageSize"`
}
