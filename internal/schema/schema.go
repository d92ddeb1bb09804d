// Package schema defines the fixed 42-column KDD Cup 99-style record
// layout shared by the generator, loader and reporter. The on-disk file
// carries no header, so column identity is positional and must match
// ColumnNames exactly.
package schema

// ColumnNames lists the 42 field names in on-disk order.
var ColumnNames = []string{
	"duration", "protocol_type", "service", "flag", "src_bytes", "dst_bytes",
	"land", "wrong_fragment", "urgent", "hot", "num_failed_logins", "logged_in",
	"num_compromised", "root_shell", "su_attempted", "num_root", "num_file_creations",
	"num_shells", "num_access_files", "num_outbound_cmds", "is_host_login",
	"is_guest_login", "count", "srv_count", "serror_rate", "srv_serror_rate",
	"rerror_rate", "srv_rerror_rate", "same_srv_rate", "diff_srv_rate",
	"srv_diff_host_rate", "dst_host_count", "dst_host_srv_count",
	"dst_host_same_srv_rate", "dst_host_diff_srv_rate",
	"dst_host_same_src_port_rate", "dst_host_srv_diff_host_rate",
	"dst_host_serror_rate", "dst_host_srv_serror_rate",
	"dst_host_rerror_rate", "dst_host_srv_rerror_rate", "attack_type",
}

// ColumnCount is the fixed record width.
const ColumnCount = 42

var (
	Protocols = []string{"tcp", "udp", "icmp"}
	Services  = []string{"http", "ftp", "smtp", "domain_u"}
	Flags     = []string{"SF", "REJ", "S0"}

	// AttackLabels are the non-benign attack_type values.
	AttackLabels = []string{"smurf.", "neptune.", "back.", "teardrop."}
)

// NormalLabel is the benign attack_type marker. Category derivation is an
// exact string match against it, never substring or case-insensitive.
const NormalLabel = "normal."

const (
	CategoryNormal = "Normal"
	CategoryAttack = "Attack"
)

// CategoryOf maps a raw attack_type label to the derived binary category.
func CategoryOf(attackType string) string {
	if attackType == NormalLabel {
		return CategoryNormal
	}
	return CategoryAttack
}
