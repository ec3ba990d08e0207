package phonebook

// Menu choices.
const (
	ChoiceList   = "1"
	ChoiceAdd    = "2"
	ChoiceEdit   = "3"
	ChoiceSearch = "4"
	ChoiceDelete = "5"
	ChoiceExit   = "6"
)

const menuText = `
Choose an action:
1. List records
2. Add a record
3. Edit a record
4. Search records
5. Delete a record
6. Exit`

// Prompts.
const (
	PromptChoice        = "Enter the number of the action: "
	PromptSurname       = "Enter surname: "
	PromptFirstName     = "Enter first name: "
	PromptPatronymic    = "Enter patronymic: "
	PromptOrganization  = "Enter organization: "
	PromptWorkPhone     = "Enter work phone as (XXX) XXX-XX-XX: "
	PromptPersonalPhone = "Enter personal phone as (XXX) XXX-XX-XX: "
	PromptEditSurname   = "Enter the surname of the record to edit: "
	PromptEditSelect    = "Enter the number of the record to edit: "
	PromptEditField     = "Enter a new value for '%s' (leave empty to keep): "
	PromptDeleteSurname = "Enter the surname of the record to delete: "
	PromptDeleteSelect  = "Enter the number of the record to delete: "
	PromptSearch        = "Enter search terms (surname, first name, patronymic, organization, work phone, personal phone) separated by commas: "
)

// Messages.
const (
	MsgInvalidChoice = "Invalid choice. Try again."
	MsgAdded         = "Record added."
	MsgEdited        = "Record updated."
	MsgDeleted       = "Record deleted."
	MsgNotFound      = "Record not found."
	MsgFound         = "Records found:"
	MsgEditing       = "Editing record: %s\n"
	MsgSearchResults = "Search results:"
	MsgNothingFound  = "Nothing found."
	MsgSaveFailed    = "Failed to save the directory: %v\n"
	MsgFarewell      = "Directory saved. Goodbye!"
)
