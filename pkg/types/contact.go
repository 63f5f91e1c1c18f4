package types

// Contact is a single directory entry.
// ID is assigned by the repository on Add and never changes afterwards;
// the zero value means the contact has not been stored yet.
type Contact struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Phone string `json:"phone" yaml:"phone"`
	Email string `json:"email" yaml:"email"`
}

// Overwrite copies the descriptive fields of src into c. The ID is left
// untouched.
func (c *Contact) Overwrite(src *Contact) {
	c.Name = src.Name
	c.Phone = src.Phone
	c.Email = src.Email
}
