package currency

// Reference rates relative to USD shared by the eurozone and other
// multi-country currencies.
const (
	usdToINR = 83.5
	usdToEUR = 0.92
	usdToGBP = 0.79
	usdToCAD = 1.37
	usdToAUD = 1.50
	usdToJPY = 157.0
	usdToCHF = 0.89
)

// defaultTable covers the company locations appearing in ds_salaries.csv.
var defaultTable = map[string]Meta{
	"US": {Symbol: "$", Name: "USD", Rate: 1.0},
	"GB": {Symbol: "£", Name: "GBP", Rate: usdToGBP},
	"CA": {Symbol: "C$", Name: "CAD", Rate: usdToCAD},
	"DE": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"IN": {Symbol: "₹", Name: "INR", Rate: usdToINR},
	"FR": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"ES": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"AU": {Symbol: "A$", Name: "AUD", Rate: usdToAUD},
	"BR": {Symbol: "R$", Name: "BRL", Rate: 5.40},
	"NL": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"JP": {Symbol: "¥", Name: "JPY", Rate: usdToJPY},
	"CH": {Symbol: "CHF", Name: "CHF", Rate: usdToCHF},
	"IT": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"PL": {Symbol: "zł", Name: "PLN", Rate: 4.05},
	"PT": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"MX": {Symbol: "$", Name: "MXN", Rate: 18.0},
	"DK": {Symbol: "kr", Name: "DKK", Rate: 6.90},
	"GR": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"TR": {Symbol: "₺", Name: "TRY", Rate: 32.5},
	"AT": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"BE": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"IE": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"LU": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"NG": {Symbol: "₦", Name: "NGN", Rate: 1500.0},
	"PK": {Symbol: "₨", Name: "PKR", Rate: 278.0},
	"RU": {Symbol: "₽", Name: "RUB", Rate: 87.0},
	"SG": {Symbol: "S$", Name: "SGD", Rate: 1.35},
	"UA": {Symbol: "₴", Name: "UAH", Rate: 40.0},
	"AE": {Symbol: "د.إ", Name: "AED", Rate: 3.67},
	"CL": {Symbol: "CLP", Name: "CLP", Rate: 930.0},
	"CO": {Symbol: "$", Name: "COP", Rate: 4000.0},
	"CY": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"CZ": {Symbol: "Kč", Name: "CZK", Rate: 23.0},
	"EE": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"FI": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"GH": {Symbol: "₵", Name: "GHS", Rate: 15.0},
	"HR": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"HU": {Symbol: "Ft", Name: "HUF", Rate: 360.0},
	"IR": {Symbol: "﷼", Name: "IRR", Rate: 42000.0},
	"MT": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"NZ": {Symbol: "NZ$", Name: "NZD", Rate: 1.63},
	"PH": {Symbol: "₱", Name: "PHP", Rate: 58.0},
	"PR": {Symbol: "$", Name: "USD", Rate: 1.0}, // Puerto Rico uses USD
	"RO": {Symbol: "lei", Name: "RON", Rate: 4.60},
	"SI": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"SK": {Symbol: "€", Name: "EUR", Rate: usdToEUR},
	"TH": {Symbol: "฿", Name: "THB", Rate: 36.0},
	"VN": {Symbol: "₫", Name: "VND", Rate: 25400.0},
}
