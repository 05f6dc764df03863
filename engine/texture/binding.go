package texture

// Binding is a material slot that owns one reference to the resource it points at.
// The zero value is an empty slot.
type Binding struct {
	res *Resource
}

// Replace binds res and releases the previously bound resource. The binding takes over the caller's reference to
// res. Binding the resource that is already bound consumes the extra reference and changes nothing else.
//
// Parameters:
//   - res: the resource to bind, or nil to clear the slot
func (b *Binding) Replace(res *Resource) {
	prev := b.res
	if prev == res {
		if res != nil && res.Refs() > 1 {
			res.Release()
		}
		return
	}
	b.res = res
	if prev != nil {
		prev.Release()
	}
}

// Resource returns the bound resource, or nil.
func (b *Binding) Resource() *Resource {
	return b.res
}

// Clear releases the bound resource and empties the slot.
func (b *Binding) Clear() {
	b.Replace(nil)
}
