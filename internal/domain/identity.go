package domain

// Kind различает типы сущностей с одинаковыми OID
type Kind string

const (
	KindMember      Kind = "member"
	KindTeam        Kind = "team"
	KindCompetition Kind = "competition"
	KindLeague      Kind = "league"
)

// IdentityKey - ключ идентичности сущности. Две сущности равны тогда и только
// тогда, когда совпадают их ключи; ключ можно использовать в map.
type IdentityKey struct {
	Kind Kind
	OID  int
}

// Identified реализуют все сущности модели
type Identified interface {
	IdentityKey() IdentityKey
}

// IsZero истинно для ключа nil-сущности
func (k IdentityKey) IsZero() bool {
	return k.Kind == ""
}

// SameIdentity сравнивает сущности по виду и OID, nil не равен ничему
func SameIdentity(a, b Identified) bool {
	if a == nil || b == nil {
		return false
	}
	ka, kb := a.IdentityKey(), b.IdentityKey()
	if ka.IsZero() || kb.IsZero() {
		return false
	}
	return ka == kb
}

func indexOf[T Identified](items []T, item T) int {
	for i, it := range items {
		if SameIdentity(it, item) {
			return i
		}
	}
	return -1
}

func contains[T Identified](items []T, item T) bool {
	return indexOf(items, item) >= 0
}

func appendUnique[T Identified](items []T, item T) []T {
	if contains(items, item) {
		return items
	}
	return append(items, item)
}

func removeIdentity[T Identified](items []T, item T) []T {
	i := indexOf(items, item)
	if i < 0 {
		return items
	}
	return append(items[:i], items[i+1:]...)
}

// FindFreeOID - первый свободный OID в диапазоне 1..len(items)+1.
// Освобожденные при удалении OID переиспользуются.
func FindFreeOID[T Identified](items []T) (int, bool) {
	used := make(map[int]struct{}, len(items))
	for _, it := range items {
		used[it.IdentityKey().OID] = struct{}{}
	}
	for oid := 1; oid <= len(items)+1; oid++ {
		if _, ok := used[oid]; !ok {
			return oid, true
		}
	}
	return 0, false
}
