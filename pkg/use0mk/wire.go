package use0mk

// Keys of a 0.mk JSON response.
const (
	keyStatus       = "status"
	keyErrorID      = "greskaId"
	keyErrorMessage = "greskaMsg"

	keyLongURI    = "dolg"
	keyShortURI   = "kratok"
	keyShortName  = "nastavka"
	keyTitle      = "urlNaslov"
	keyStatsURI   = "statsLink"
	keyDeleteURI  = "brisiLink"
	keyDeleteCode = "brisiKod"
)

// statusOK is the value of the status key on a successful call.
const statusOK = 1

// formDeleteCode is the form field carrying the delete code on a delete call.
const formDeleteCode = "brisiKod"
