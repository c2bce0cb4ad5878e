package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// MakeBsonM turns a patch struct into a $set document.
// Nil pointers and zero values are left out, set pointers are dereferenced
// so a pointer to a zero value still patches the field.
func MakeBsonM(patchable interface{}) (bson.M, error) {
	val := reflect.Indirect(reflect.ValueOf(patchable))
	typ := val.Type()
	res := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() || field.IsZero() {
			continue
		}
		tag, err := bsoncodec.DefaultStructTagParser(typ.Field(i))
		if err != nil {
			return nil, err
		}
		if tag.Skip {
			continue
		}
		if field.Kind() == reflect.Ptr {
			field = field.Elem()
		}
		res[tag.Name] = field.Interface()
	}
	return res, nil
}
