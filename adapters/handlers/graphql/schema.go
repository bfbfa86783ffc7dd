package graphql

import (
	"fmt"

	"github.com/tailor-inc/graphql"

	"github.com/rolodexd/rolodexd/entities/models"
)

// The field names below are the wire format and deliberately snake_case, as
// that's the shape clients of this API depend on.

func contactObject() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Contact",
		Description: "A stored contact record",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The id the contact is stored under",
			},
			"first_name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"last_name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
		},
	})
}

// contactFieldsObject is the reduced payload the create mutation answers
// with; it omits the id.
func contactFieldsObject() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "ContactFields",
		Description: "The name fields of a stored contact",
		Fields: graphql.Fields{
			"first_name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"last_name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
		},
	})
}

func contactInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        "ContactInput",
		Description: "A contact to store",
		Fields: graphql.InputObjectConfigFieldMap{
			"id": &graphql.InputObjectFieldConfig{
				Type:        graphql.String,
				Description: "The storage key; a fresh one is assigned if empty",
			},
			"first_name": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.String),
			},
			"last_name": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.String),
			},
		},
	})
}

func assembleQuery(manager Manager) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "RolodexQuery",
		Description: "Location of the root query",
		Fields: graphql.Fields{
			"get": &graphql.Field{
				Type:        contactObject(),
				Description: "Get a contact by its id",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type:        graphql.NewNonNull(graphql.String),
						Description: "The id the contact is stored under",
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return manager.Get(p.Context, p.Args["id"].(string))
				},
			},
		},
	})
}

func assembleMutation(manager Manager) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "RolodexMutation",
		Description: "Location of the root mutation",
		Fields: graphql.Fields{
			"create": &graphql.Field{
				Type:        contactFieldsObject(),
				Description: "Store a contact",
				Args: graphql.FieldConfigArgument{
					"contact": &graphql.ArgumentConfig{
						Type:        graphql.NewNonNull(contactInput()),
						Description: "The contact to store",
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in, ok := p.Args["contact"].(map[string]interface{})
					if !ok {
						return nil, fmt.Errorf("arg 'contact' must be an input object")
					}

					return manager.Create(p.Context, extractContact(in))
				},
			},
		},
	})
}

// extractContact maps the graphql input object onto the domain model
func extractContact(in map[string]interface{}) *models.Contact {
	contact := &models.Contact{}

	if id, ok := in["id"].(string); ok {
		contact.ID = id
	}
	if firstName, ok := in["first_name"].(string); ok {
		contact.FirstName = firstName
	}
	if lastName, ok := in["last_name"].(string); ok {
		contact.LastName = lastName
	}

	return contact
}
