package discovery

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// PgPassEntry represents a line in the .pgpass file
type PgPassEntry struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// ParsePgPass reads and parses the .pgpass file. A missing file is not an
// error; insecure permissions are, matching libpq.
func ParsePgPass() ([]PgPassEntry, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	pgpassPath := filepath.Join(home, ".pgpass")

	if runtime.GOOS != "windows" {
		fileInfo, err := os.Stat(pgpassPath)
		if err != nil {
			if os.IsNotExist(err) {
				return []PgPassEntry{}, nil
			}
			return nil, err
		}
		if mode := fileInfo.Mode(); mode.Perm()&0077 != 0 {
			return nil, fmt.Errorf(".pgpass file has insecure permissions %v, must be 0600", mode.Perm())
		}
	}

	file, err := os.Open(pgpassPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []PgPassEntry{}, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []PgPassEntry
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parsePgPassLine(line)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

// parsePgPassLine parses a single .pgpass line.
// Format: hostname:port:database:username:password with \: and \\ escapes.
func parsePgPassLine(line string) (PgPassEntry, error) {
	parts := make([]string, 0, 5)
	var current strings.Builder
	escaped := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case escaped:
			current.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == ':':
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	parts = append(parts, current.String())

	if len(parts) != 5 {
		return PgPassEntry{}, os.ErrInvalid
	}

	port := 5432
	if parts[1] != "*" {
		p, err := strconv.Atoi(parts[1])
		if err != nil {
			return PgPassEntry{}, fmt.Errorf("invalid port: %s", parts[1])
		}
		if p < 1 || p > 65535 {
			return PgPassEntry{}, fmt.Errorf("port out of range: %d", p)
		}
		port = p
	}

	return PgPassEntry{
		Host:     parts[0],
		Port:     port,
		Database: parts[2],
		User:     parts[3],
		Password: parts[4],
	}, nil
}

// FindPassword looks up the password for a connection
func FindPassword(host string, port int, database, user string) string {
	entries, err := ParsePgPass()
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		if matches(entry.Host, host) &&
			matches(strconv.Itoa(entry.Port), strconv.Itoa(port)) &&
			matches(entry.Database, database) &&
			matches(entry.User, user) {
			return entry.Password
		}
	}

	return ""
}

// matches checks if pattern matches value (* is wildcard)
func matches(pattern, value string) bool {
	return pattern == "*" || pattern == value
}
