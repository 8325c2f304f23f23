package docstore

// Database is a namespace handing out collection handles.
type Database struct {
	client *Client
	name   string
}

// Name returns the database name.
func (d *Database) Name() string {
	return d.name
}

// Collection returns a handle on the named collection.
func (d *Database) Collection(name string) *Collection {
	return &Collection{client: d.client, database: d.name, name: name}
}
