package schema

import (
	"fmt"
	"strconv"
)

// Record is one synthetic network-connection observation. Field order
// mirrors ColumnNames.
type Record struct {
	Duration         int
	ProtocolType     string
	Service          string
	Flag             string
	SrcBytes         int
	DstBytes         int
	Land             int
	WrongFragment    int
	Urgent           int
	Hot              int
	NumFailedLogins  int
	LoggedIn         int
	NumCompromised   int
	RootShell        int
	SuAttempted      int
	NumRoot          int
	NumFileCreations int
	NumShells        int
	NumAccessFiles   int
	NumOutboundCmds  int
	IsHostLogin      int
	IsGuestLogin     int
	Count            int
	SrvCount         int

	SerrorRate      float64
	SrvSerrorRate   float64
	RerrorRate      float64
	SrvRerrorRate   float64
	SameSrvRate     float64
	DiffSrvRate     float64
	SrvDiffHostRate float64

	DstHostCount    int
	DstHostSrvCount int

	DstHostSameSrvRate     float64
	DstHostDiffSrvRate     float64
	DstHostSameSrcPortRate float64
	DstHostSrvDiffHostRate float64
	DstHostSerrorRate      float64
	DstHostSrvSerrorRate   float64
	DstHostRerrorRate      float64
	DstHostSrvRerrorRate   float64

	AttackType string
}

// ParseError reports a row that cannot be decoded against the schema,
// either because its width differs from ColumnCount or because a value
// does not parse as its declared type.
type ParseError struct {
	Line int // 1-based data row number
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d does not match the %d-column schema: %v", e.Line, ColumnCount, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Fields encodes the record as text values in schema order. Floats use the
// shortest representation that round-trips through ParseRecord.
func (r Record) Fields() []string {
	itoa := strconv.Itoa
	ftoa := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

	return []string{
		itoa(r.Duration),
		r.ProtocolType,
		r.Service,
		r.Flag,
		itoa(r.SrcBytes),
		itoa(r.DstBytes),
		itoa(r.Land),
		itoa(r.WrongFragment),
		itoa(r.Urgent),
		itoa(r.Hot),
		itoa(r.NumFailedLogins),
		itoa(r.LoggedIn),
		itoa(r.NumCompromised),
		itoa(r.RootShell),
		itoa(r.SuAttempted),
		itoa(r.NumRoot),
		itoa(r.NumFileCreations),
		itoa(r.NumShells),
		itoa(r.NumAccessFiles),
		itoa(r.NumOutboundCmds),
		itoa(r.IsHostLogin),
		itoa(r.IsGuestLogin),
		itoa(r.Count),
		itoa(r.SrvCount),
		ftoa(r.SerrorRate),
		ftoa(r.SrvSerrorRate),
		ftoa(r.RerrorRate),
		ftoa(r.SrvRerrorRate),
		ftoa(r.SameSrvRate),
		ftoa(r.DiffSrvRate),
		ftoa(r.SrvDiffHostRate),
		itoa(r.DstHostCount),
		itoa(r.DstHostSrvCount),
		ftoa(r.DstHostSameSrvRate),
		ftoa(r.DstHostDiffSrvRate),
		ftoa(r.DstHostSameSrcPortRate),
		ftoa(r.DstHostSrvDiffHostRate),
		ftoa(r.DstHostSerrorRate),
		ftoa(r.DstHostSrvSerrorRate),
		ftoa(r.DstHostRerrorRate),
		ftoa(r.DstHostSrvRerrorRate),
		r.AttackType,
	}
}

// ParseRecord decodes one positional row. line is the 1-based data row
// number used in error reporting.
func ParseRecord(fields []string, line int) (Record, error) {
	if len(fields) != ColumnCount {
		return Record{}, &ParseError{Line: line, Err: fmt.Errorf("got %d values", len(fields))}
	}

	var r Record
	var err error

	atoi := func(name, s string) int {
		if err != nil {
			return 0
		}
		v, convErr := strconv.Atoi(s)
		if convErr != nil {
			err = fmt.Errorf("field %q: %w", name, convErr)
		}
		return v
	}
	atof := func(name, s string) float64 {
		if err != nil {
			return 0
		}
		v, convErr := strconv.ParseFloat(s, 64)
		if convErr != nil {
			err = fmt.Errorf("field %q: %w", name, convErr)
		}
		return v
	}

	r.Duration = atoi("duration", fields[0])
	r.ProtocolType = fields[1]
	r.Service = fields[2]
	r.Flag = fields[3]
	r.SrcBytes = atoi("src_bytes", fields[4])
	r.DstBytes = atoi("dst_bytes", fields[5])
	r.Land = atoi("land", fields[6])
	r.WrongFragment = atoi("wrong_fragment", fields[7])
	r.Urgent = atoi("urgent", fields[8])
	r.Hot = atoi("hot", fields[9])
	r.NumFailedLogins = atoi("num_failed_logins", fields[10])
	r.LoggedIn = atoi("logged_in", fields[11])
	r.NumCompromised = atoi("num_compromised", fields[12])
	r.RootShell = atoi("root_shell", fields[13])
	r.SuAttempted = atoi("su_attempted", fields[14])
	r.NumRoot = atoi("num_root", fields[15])
	r.NumFileCreations = atoi("num_file_creations", fields[16])
	r.NumShells = atoi("num_shells", fields[17])
	r.NumAccessFiles = atoi("num_access_files", fields[18])
	r.NumOutboundCmds = atoi("num_outbound_cmds", fields[19])
	r.IsHostLogin = atoi("is_host_login", fields[20])
	r.IsGuestLogin = atoi("is_guest_login", fields[21])
	r.Count = atoi("count", fields[22])
	r.SrvCount = atoi("srv_count", fields[23])
	r.SerrorRate = atof("serror_rate", fields[24])
	r.SrvSerrorRate = atof("srv_serror_rate", fields[25])
	r.RerrorRate = atof("rerror_rate", fields[26])
	r.SrvRerrorRate = atof("srv_rerror_rate", fields[27])
	r.SameSrvRate = atof("same_srv_rate", fields[28])
	r.DiffSrvRate = atof("diff_srv_rate", fields[29])
	r.SrvDiffHostRate = atof("srv_diff_host_rate", fields[30])
	r.DstHostCount = atoi("dst_host_count", fields[31])
	r.DstHostSrvCount = atoi("dst_host_srv_count", fields[32])
	r.DstHostSameSrvRate = atof("dst_host_same_srv_rate", fields[33])
	r.DstHostDiffSrvRate = atof("dst_host_diff_srv_rate", fields[34])
	r.DstHostSameSrcPortRate = atof("dst_host_same_src_port_rate", fields[35])
	r.DstHostSrvDiffHostRate = atof("dst_host_srv_diff_host_rate", fields[36])
	r.DstHostSerrorRate = atof("dst_host_serror_rate", fields[37])
	r.DstHostSrvSerrorRate = atof("dst_host_srv_serror_rate", fields[38])
	r.DstHostRerrorRate = atof("dst_host_rerror_rate", fields[39])
	r.DstHostSrvRerrorRate = atof("dst_host_srv_rerror_rate", fields[40])
	r.AttackType = fields[41]

	if err != nil {
		return Record{}, &ParseError{Line: line, Err: err}
	}
	return r, nil
}
