/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration entity, loaded from the genesis
file once and read back from the database on every use. Not being able to get
a configuration is a critical condition for the application and there is no
recovery path for the client.
*/
package gconf
