package cart

import (
	"encoding/json"
	"log"
	"sync"

	"soluciones-ferreteras/models"
)

// Store maintains the authoritative, persisted set of quote line items for
// one browsing session. Mutations go through the pure reducer functions and
// the resulting snapshot replaces the previous one atomically; every
// successful mutation is persisted through the injected Storage port.
type Store struct {
	mu      sync.Mutex
	items   []models.CartLineItem
	storage Storage
}

// NewStore creates a Store rehydrated from the given storage. A missing or
// corrupt snapshot yields an empty cart; individually malformed entries are
// dropped rather than failing the whole load.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	s.rehydrate()
	return s
}

func (s *Store) rehydrate() {
	data, err := s.storage.Read()
	if err != nil {
		log.Printf("⚠️  Cart: failed to read stored snapshot, starting empty: %v", err)
		return
	}
	if len(data) == 0 {
		return
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("⚠️  Cart: corrupt snapshot discarded: %v", err)
		return
	}

	items := make([]models.CartLineItem, 0, len(raw))
	dropped := 0
	for _, entry := range raw {
		item, ok := decodeEntry(entry)
		if !ok {
			dropped++
			continue
		}
		// Re-apply the merge rule so a tampered snapshot cannot smuggle in
		// duplicate codes or out-of-range quantities.
		items = addItem(items, models.CartProduct{
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			ImageRef:    item.ImageRef,
		}, item.Quantity)
	}
	if dropped > 0 {
		log.Printf("⚠️  Cart: dropped %d malformed stored entries", dropped)
	}
	s.items = items
}

// decodeEntry validates the stored shape of one entry: string productCode,
// productName and imageRef, numeric quantity.
func decodeEntry(raw json.RawMessage) (models.CartLineItem, bool) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.CartLineItem{}, false
	}

	code, okCode := fields["productCode"].(string)
	name, okName := fields["productName"].(string)
	image, okImage := fields["imageRef"].(string)
	qty, okQty := fields["quantity"].(float64)
	if !okCode || !okName || !okImage || !okQty || code == "" {
		return models.CartLineItem{}, false
	}

	return models.CartLineItem{
		ProductCode: code,
		ProductName: name,
		ImageRef:    image,
		Quantity:    ClampQuantity(int(qty)),
	}, true
}

// persist serializes the current items and overwrites the stored snapshot.
// A storage failure is logged and otherwise ignored: the in-memory cart
// remains correct for the session.
func (s *Store) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("❌ Cart: failed to serialize snapshot: %v", err)
		return
	}
	if err := s.storage.Write(data); err != nil {
		log.Printf("⚠️  Cart: failed to persist snapshot (in-memory state stands): %v", err)
	}
}

// Add inserts the product or merges its quantity into an existing line.
// Always succeeds; quantities are clamped, never rejected.
func (s *Store) Add(product models.CartProduct, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = addItem(s.items, product, quantity)
	s.persist()
}

// Remove deletes the entry if present; no-op if absent
func (s *Store) Remove(productCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = removeItem(s.items, productCode)
	s.persist()
}

// UpdateQuantity sets the clamped quantity on a line; no-op if absent
func (s *Store) UpdateQuantity(productCode string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = updateQuantity(s.items, productCode, quantity)
	s.persist()
}

// Clear empties the cart
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns an independent snapshot of the current line items. Quote
// generation reads this snapshot and never blocks later cart mutations.
func (s *Store) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]models.CartLineItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// IsInCart reports whether the product code has a line in the cart
func (s *Store) IsInCart(productCode string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ProductCode == productCode {
			return true
		}
	}
	return false
}

// GetQuantity returns the stored quantity for the code, 0 if absent
func (s *Store) GetQuantity(productCode string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ProductCode == productCode {
			return item.Quantity
		}
	}
	return 0
}

// ItemCount returns the sum of all line quantities, recomputed on read
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}
