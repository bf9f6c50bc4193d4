package prices

// Instrument is a preset entry users can pick without typing symbols.
type Instrument struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Sector      string `json:"sector,omitempty"`
}

// BenchmarkSymbol is the default comparison index for backtests.
const BenchmarkSymbol = "^GSPC"

var USIndices = []Instrument{
	{Symbol: "^GSPC", Name: "S&P 500", Description: "500 large-cap US companies"},
	{Symbol: "^NDX", Name: "NASDAQ 100", Description: "100 largest non-financial NASDAQ companies"},
	{Symbol: "^DJI", Name: "Dow Jones Industrial", Description: "30 large-cap US companies"},
	{Symbol: "^RUT", Name: "Russell 2000", Description: "2000 US small-cap companies"},
	{Symbol: "^SOX", Name: "PHLX Semiconductor", Description: "semiconductor sector index"},
}

var USSectorETFs = []Instrument{
	{Symbol: "XLK", Name: "Technology Select Sector", Sector: "Technology"},
	{Symbol: "XLV", Name: "Health Care Select Sector", Sector: "Healthcare"},
	{Symbol: "XLF", Name: "Financial Select Sector", Sector: "Financial Services"},
	{Symbol: "XLY", Name: "Consumer Discretionary", Sector: "Consumer Cyclical"},
	{Symbol: "XLI", Name: "Industrial Select Sector", Sector: "Industrials"},
	{Symbol: "XLE", Name: "Energy Select Sector", Sector: "Energy"},
	{Symbol: "XLB", Name: "Materials Select Sector", Sector: "Basic Materials"},
	{Symbol: "XLRE", Name: "Real Estate Select Sector", Sector: "Real Estate"},
	{Symbol: "XLU", Name: "Utilities Select Sector", Sector: "Utilities"},
	{Symbol: "XLC", Name: "Communication Services", Sector: "Communication Services"},
}

var PopularUSStocks = []Instrument{
	{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology"},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Sector: "Technology"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Sector: "Communication Services"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Sector: "Consumer Cyclical"},
	{Symbol: "TSLA", Name: "Tesla Inc.", Sector: "Consumer Cyclical"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Sector: "Technology"},
	{Symbol: "META", Name: "Meta Platforms Inc.", Sector: "Communication Services"},
	{Symbol: "BRK-B", Name: "Berkshire Hathaway", Sector: "Financial Services"},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Sector: "Financial Services"},
	{Symbol: "JNJ", Name: "Johnson & Johnson", Sector: "Healthcare"},
}

// SP500Components is an abbreviated component list used when no index
// membership feed is configured.
var SP500Components = []string{
	"AAPL", "MSFT", "AMZN", "GOOGL", "GOOG", "TSLA", "BRK-B", "UNH",
	"JNJ", "XOM", "JPM", "V", "PG", "NVDA", "HD", "MA", "CVX", "ABBV",
	"PFE", "LLY", "BAC", "KO", "PEP", "AVGO", "COST", "DIS", "CSCO",
	"WMT", "MRK", "MCD", "ABT", "ADBE", "TMO", "ACN", "NKE", "CRM",
	"VZ", "DHR", "NEE", "LIN", "PM", "TXN", "BMY", "HON", "AMD",
	"INTC", "QCOM", "T", "UPS", "IBM", "SBUX", "GS", "BA", "CAT",
}

var Nasdaq100Components = []string{
	"AAPL", "MSFT", "AMZN", "TSLA", "GOOGL", "GOOG", "NVDA", "META",
	"AVGO", "PEP", "COST", "AMD", "ADBE", "CSCO", "INTC", "CMCSA",
	"NFLX", "QCOM", "AMGN", "TXN", "INTU", "HON", "PYPL", "SBUX",
	"BKNG", "ADI", "GILD", "MDLZ", "REGN", "ISRG", "VRTX", "FISV",
	"LRCX", "ATVI", "KDP", "KHC", "CHTR", "ADP", "MELI", "MNST",
}
