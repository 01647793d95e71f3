package method

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
	OPTIONS
	PUT
	PATCH
	DELETE

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods, sorted by their integer value.
// Unknown is not included.
var List = []Method{GET, POST, OPTIONS, PUT, PATCH, DELETE}

// Parse recognizes the six supported methods by an exact, case-sensitive
// match. Anything else is Unknown.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "OPTIONS" {
			return OPTIONS
		}
	}

	return Unknown
}

func (m Method) String() string {
	lut := [...]string{
		GET:     "GET",
		POST:    "POST",
		OPTIONS: "OPTIONS",
		PUT:     "PUT",
		PATCH:   "PATCH",
		DELETE:  "DELETE",
	}
	if int(m) >= len(lut) {
		return ""
	}

	return lut[m]
}
