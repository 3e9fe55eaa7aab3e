package classifier

import (
	"github.com/spendlens/statement-engine/internal/domain/statement"
)

// Ordered category table. First matching entry wins; the order follows how
// distinctive the keywords are, so merchant names outrank generic words.
var categoryTable = newTable([]tableEntry{
	{result: statement.CategoryFoodDining, keywords: []string{
		"swiggy", "zomato", "dominos", "pizza", "mcdonald", "kfc", "burger",
		"restaurant", "cafe", "eatery", "dhaba", "food", "dining",
	}},
	{result: statement.CategoryTransport, keywords: []string{
		"uber", "ola cab", "olacabs", "rapido", "irctc", "redbus", "metro rail",
		"fastag", "petrol", "diesel", "fuel", "parking", "toll",
	}},
	{result: statement.CategoryShopping, keywords: []string{
		"amazon", "flipkart", "myntra", "ajio", "nykaa", "snapdeal", "meesho",
		"mall", "store", "shopping", "retail",
	}},
	{result: statement.CategoryEntertainment, keywords: []string{
		"netflix", "hotstar", "spotify", "prime video", "sony liv", "bookmyshow",
		"pvr", "inox", "cinema", "movie", "gaming",
	}},
	{result: statement.CategoryUtilities, keywords: []string{
		"electricity", "water bill", "gas bill", "broadband", "airtel", "jio",
		"vodafone", "bsnl", "dth", "recharge", "postpaid", "utility",
	}},
	{result: statement.CategoryHealthcare, keywords: []string{
		"hospital", "pharmacy", "apollo", "medplus", "1mg", "netmeds", "pharmeasy",
		"clinic", "diagnostic", "medical", "doctor",
	}},
	{result: statement.CategoryEducation, keywords: []string{
		"school", "college", "university", "tuition", "coaching", "udemy",
		"coursera", "byjus", "exam fee", "course",
	}},
	{result: statement.CategoryGroceries, keywords: []string{
		"bigbasket", "blinkit", "zepto", "grofers", "jiomart", "dmart",
		"grocery", "kirana", "supermarket", "provision",
	}},
	{result: statement.CategoryATM, keywords: []string{
		"atm", "cash withdrawal", "self withdrawal", "cash wdl", "cwdr",
	}},
	{result: statement.CategoryBankCharges, keywords: []string{
		"charge", "chrg", "fee", "gst", "sms alert", "penalty", "amc",
		"maintenance", "min bal",
	}},
}, statement.CategoryDefault)

// ClassifyCategory suggests a spending category for a cleaned description.
// Advisory metadata only; never used in a filtering decision.
func ClassifyCategory(description string) string {
	return categoryTable.lookup(description)
}
