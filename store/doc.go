/*
Package store provides the in-memory key value stores used by the
application: a btree backed cache that can be layered on top of any
KVStore and either written through or discarded as a whole.
*/
package store
