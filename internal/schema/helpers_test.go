package schema

// object returns the resolved object named name, or nil.
func (c *Config) object(name string) *Object {
	for _, o := range c.Objects {
		if o.Name == name {
			return o
		}
	}

	return nil
}
