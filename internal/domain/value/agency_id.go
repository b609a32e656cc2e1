package value

import (
	"fmt"
	"strconv"
	"strings"
)

type AgencyID int64

func (id AgencyID) Int64() int64 {
	return int64(id)
}

func (id AgencyID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func ParseAgencyID(s string) (AgencyID, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseInt: %w", err)
	}

	return AgencyID(id), nil
}
