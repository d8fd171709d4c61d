package config

import "strings"

// canonicalizeEnvKey maps an environment variable name onto the key path of
// the loaded YAML tree, so POSTGRES_MASTER_USERNAME and POSTGRES_MASTER_USER_NAME
// both become postgres.master.userName. Segments with no counterpart in the
// tree are lowercased and kept as separate path elements.
func canonicalizeEnvKey(raw string, tree map[string]any) string {
	parts := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool { return r == '_' })
	path := make([]string, 0, len(parts))

	node := tree
	for len(parts) > 0 {
		key, child, used := matchKey(node, parts)
		if used == 0 {
			key, child, used = parts[0], nil, 1
		}

		path = append(path, key)
		parts = parts[used:]
		node = child
	}

	return strings.Join(path, ".")
}

// matchKey finds the key of node equal to the longest run of leading parts
// joined together, ignoring case. It reports how many parts were consumed.
func matchKey(node map[string]any, parts []string) (string, map[string]any, int) {
	if len(node) == 0 {
		return "", nil, 0
	}

	for n := len(parts); n > 0; n-- {
		want := strings.Join(parts[:n], "")
		for key, value := range node {
			if strings.EqualFold(key, want) {
				child, _ := value.(map[string]any)

				return key, child, n
			}
		}
	}

	return "", nil, 0
}
