package dto

// StatisticsRequest query params para GET /api/statistics.
// Anchor según modo: day/week YYYY-MM-DD, month YYYY-MM, year YYYY.
// TzOffset en minutos (UTC = local + offset); nil equivale a 0.
type StatisticsRequest struct {
	Mode     string `query:"mode"`
	Anchor   string `query:"anchor"`
	TzOffset *int   `query:"tzOffset"`
}

// StatisticsResponse resultado agregado de ventas para una ventana de tiempo.
// Values tiene la misma longitud que Labels; todos los montos van redondeados
// a entero, una sola vez al final de la acumulación.
type StatisticsResponse struct {
	Labels        []string `json:"labels"`
	Values        []int64  `json:"values"`
	TotalAmount   int64    `json:"totalAmount"`
	TotalSales    int64    `json:"totalSales"`
	TotalProfit   int64    `json:"totalProfit"`
	TotalProducts int64    `json:"totalProducts"`
}
