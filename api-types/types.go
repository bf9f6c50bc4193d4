package types

type MetricsRequest struct {
	Symbols []string `json:"symbols"`
	// optional - equal weight if absent
	Weights      []float64 `json:"weights,omitempty"`
	Days         int       `json:"days,omitempty"`
	RiskFreeRate float64   `json:"riskFreeRate,omitempty"`
}

type MetricsResponse struct {
	AnnualReturn     float64 `json:"annualReturn"`
	AnnualVolatility float64 `json:"annualVolatility"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	SortinoRatio     float64 `json:"sortinoRatio"`
	CalmarRatio      float64 `json:"calmarRatio"`
	MaxDrawdown      float64 `json:"maxDrawdown"`
	WinRate          float64 `json:"winRate"`
	ProfitLossRatio  float64 `json:"profitLossRatio"`
	VaR95            float64 `json:"var95"`
	CVaR95           float64 `json:"cvar95"`

	Cumulative []float64 `json:"cumulative"`
	Dropped    []string  `json:"dropped,omitempty"`
}

type OptimizeRequest struct {
	Symbols []string `json:"symbols"`
	// max-sharpe, min-variance, risk-parity or equal
	Strategy string `json:"strategy"`
	Days     int    `json:"days,omitempty"`
}

type OptimizeResponse struct {
	Weights           map[string]float64 `json:"weights"`
	ExpectedReturn    float64            `json:"expectedReturn"`
	Volatility        float64            `json:"volatility"`
	SharpeRatio       float64            `json:"sharpeRatio"`
	RiskContributions map[string]float64 `json:"riskContributions,omitempty"`
	Dropped           []string           `json:"dropped,omitempty"`
}

type BacktestRequest struct {
	Symbols []string  `json:"symbols"`
	Weights []float64 `json:"weights,omitempty"`
	// YYYY-MM-DD; default is the trailing year
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type BacktestResponse struct {
	Dates        []string  `json:"dates"`
	NAV          []float64 `json:"nav"`
	BenchmarkNAV []float64 `json:"benchmarkNav"`

	AnnualReturn     float64 `json:"annualReturn"`
	AnnualVolatility float64 `json:"annualVolatility"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	MaxDrawdown      float64 `json:"maxDrawdown"`
	CumulativeReturn float64 `json:"cumulativeReturn"`

	Assets  []string  `json:"assets"`
	Weights []float64 `json:"weights"`
	Dropped []string  `json:"dropped,omitempty"`
}

type CorrelationMatrixRequest struct {
	Symbols []string `json:"symbols"`
	Days    int      `json:"days,omitempty"`
}

type Correlation struct {
	AssetOne    string  `json:"assetOne"`
	AssetTwo    string  `json:"assetTwo"`
	Correlation float64 `json:"correlation"`
}

type CorrelationMatrixResponse struct {
	Correlations []Correlation `json:"correlations"`
}
