package secrets

import (
	"sort"
	"strings"

	serrors "github.com/asokolsky/secretsettings/pkg/errors"
)

// EncryptedPrefix marks keys whose values are base64 ciphertexts.
const EncryptedPrefix = "encrypted-"

// DecryptRealm returns a copy of realm where every `encrypted-<name>` entry has
// a decrypted `<name>` companion. With a nil key realm is returned unchanged.
func DecryptRealm(realm map[string]any, key []byte) (map[string]any, error) {
	if key == nil {
		return realm, nil
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return decryptRealm(realm, key)
}

// DecryptRealms applies DecryptRealm to every mapping value of doc. Values that
// are not mappings are passed through. With a nil key doc is returned unchanged.
func DecryptRealms(doc map[string]any, key []byte) (map[string]any, error) {
	if key == nil {
		return doc, nil
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	res := make(map[string]any, len(doc))
	for name, v := range doc {
		realm, ok := v.(map[string]any)
		if !ok {
			res[name] = v
			continue
		}
		decrypted, err := decryptRealm(realm, key)
		if err != nil {
			return nil, err
		}
		res[name] = decrypted
	}
	return res, nil
}

func decryptRealm(realm map[string]any, key []byte) (map[string]any, error) {
	res := make(map[string]any, len(realm))
	for k, v := range realm {
		res[k] = v
	}

	for k, v := range realm {
		name, found := strings.CutPrefix(k, EncryptedPrefix)
		if !found {
			continue
		}
		if name == "" {
			return nil, serrors.New(serrors.KindMalformedKey,
				"Bad key '%s' in [%s]", k, strings.Join(sortedKeys(realm), ", "))
		}
		encoded, ok := v.(string)
		if !ok {
			return nil, serrors.New(serrors.KindDecrypt,
				"Failed to decrypt '%s': value is %T, not a base64 string", k, v)
		}
		plaintext, err := DecryptString(encoded, key)
		if err != nil {
			return nil, serrors.Wrap(serrors.KindDecrypt, err, "Failed to decrypt '%s': %v", k, err)
		}
		res[name] = plaintext
	}
	return res, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
