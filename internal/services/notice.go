package services

import (
	"errors"
	"fmt"
	"strconv"

	"car_rental/internal/flash"
	"car_rental/internal/models"
	"car_rental/internal/mutation"
)

const (
	msgMissingFields   = "Błąd: Wprowadź wszystkie wymagane dane"
	msgNotInteger      = "Błąd: Podano nieprawidłowe dane. Oczekiwano liczby całkowitej."
	msgTooLong         = "Błąd: Wartość przekracza maksymalną liczbę znaków."
	msgInvalidSyntax   = "Nieprawidłowy typ danych wstawiony do kolumny."
	msgDatabaseError   = "Wystąpił bląd po stronie bazy %s"
	msgDeleteError     = "Wystąpił nieoczekiwany błąd: %s"
	msgDeleteNotFound  = "Nie znaleziono rekordu %d."
	msgRegistration    = "Podano niepoprawny numer rejestracyjny. Poprawny format to [TRZY_LITERY][TRZY_CYFRY][2-5_ZNAKÓW_LUB_SPACJI]"
	msgPhoneFormat     = "Podano niepoprawny numer %s. Poprawny format to [9 CYFR]."
	msgDateOrder       = "Wygląda na to, że próbujesz zakończyć wypożyczenie, zanim się zacznie. Proszę wprowadzić poprawne daty."
	msgNoCarsAvailable = "Brak dostępnych aut w podanym terminie. Spróbuj inny model lub zmień termin zamówienia."
)

// ErrorNotice is the message shown for err when no entity-specific text
// applies.
func ErrorNotice(err error) flash.Message {
	switch mutation.KindOf(err) {
	case mutation.KindValidation:
		if errors.Is(err, mutation.ErrMissingField) {
			return flash.Error(msgMissingFields)
		}
		if errors.Is(err, mutation.ErrNotInteger) {
			return flash.Error(msgNotInteger)
		}
		return flash.Error(msgInvalidSyntax)
	case mutation.KindTooLong:
		return flash.Error(msgTooLong)
	case mutation.KindInvalidSyntax:
		return flash.Error(msgInvalidSyntax)
	default:
		return flash.Error(fmt.Sprintf(msgDatabaseError, databaseMessage(err)))
	}
}

func databaseMessage(err error) string {
	var mErr *mutation.Error
	if errors.As(err, &mErr) {
		return mErr.DatabaseMessage()
	}
	return err.Error()
}

// createNotice turns the result of a create into a flash message, preferring
// the entity-specific text registered for the error kind.
func createNotice(err error, success string, specific map[mutation.Kind]string) flash.Message {
	if err == nil {
		return flash.Success(success)
	}
	if text, ok := specific[mutation.KindOf(err)]; ok {
		return flash.Error(text)
	}
	return ErrorNotice(err)
}

func deleteNotice(v View, id int, deleted bool, err error) flash.Message {
	if err != nil {
		return flash.Error(fmt.Sprintf(msgDeleteError, databaseMessage(err)))
	}
	if !deleted {
		return flash.Error(fmt.Sprintf(msgDeleteNotFound, id))
	}
	return flash.Success(fmt.Sprintf(deletedTexts[v], id))
}

var deletedTexts = map[View]string{
	ViewCars:      "Auto %d zostało pomyślnie usunięte.",
	ViewModels:    "Model %d został pomyślnie usunięty.",
	ViewBrands:    "Marka %d została pomyślnie usunięta.",
	ViewClasses:   "Klasa %d została pomyślnie usunięta.",
	ViewClients:   "Klient %d został pomyślnie usunięty.",
	ViewJobs:      "Stanowisko %d zostało pomyślnie usunięte.",
	ViewWorkers:   "Pracownik %d został pomyślnie usunięty.",
	ViewPriceList: "Rekord %d został pomyślnie usunięty.",
	ViewRentals:   "Wypożyczenie %d zostało pomyślnie usunięte.",
	ViewOrders:    "Zamówienie %d zostało pomyślnie usunięte.",
	ViewPayments:  "Płatność %d została pomyślnie usunięta.",
}

func carMessages(car models.Car) map[mutation.Kind]string {
	return map[mutation.Kind]string{
		mutation.KindDomainFormat: msgRegistration,
		mutation.KindDuplicateKey: fmt.Sprintf("Numer rejestracyjny '%s' już istnieje w bazie danych. Proszę podać unikalny numer.", car.RegistrationNumber),
	}
}

func brandMessages(brand models.Brand) map[mutation.Kind]string {
	return map[mutation.Kind]string{
		mutation.KindDuplicateKey: fmt.Sprintf("Marka %s istnieje już w bazie. Proszę podać unikalną nazwę.", brand.Name),
	}
}

func classMessages(class models.CarClass) map[mutation.Kind]string {
	return map[mutation.Kind]string{
		mutation.KindDuplicateKey: fmt.Sprintf("Klasa %s istnieje już w bazie. Proszę podać unikalną nazwę.", class.Name),
	}
}

func clientMessages(client models.Client) map[mutation.Kind]string {
	return map[mutation.Kind]string{
		mutation.KindDuplicateKey: fmt.Sprintf("Numer %s istnieje już w bazie. Proszę podać unikalny numer telefonu.", client.Phone),
		mutation.KindDomainFormat: fmt.Sprintf(msgPhoneFormat, client.Phone),
	}
}

func jobMessages(job models.Job) map[mutation.Kind]string {
	return map[mutation.Kind]string{
		mutation.KindDuplicateKey:    fmt.Sprintf("Stanowisko %s istnieje już w bazie. Proszę podać unikalną nazwę.", job.Name),
		mutation.KindCheckConstraint: fmt.Sprintf("Wypłata %s musi byc wieksza od zera.", strconv.FormatFloat(job.Salary, 'f', -1, 64)),
	}
}

func employeeMessages(e models.Employee) map[mutation.Kind]string {
	return map[mutation.Kind]string{
		mutation.KindDuplicateKey: fmt.Sprintf("Pracownik %s %s o numerze %s istnieje już w bazie.", e.FirstName, e.LastName, e.Phone),
		mutation.KindDomainFormat: fmt.Sprintf(msgPhoneFormat, e.Phone),
	}
}

var dateOrderMessages = map[mutation.Kind]string{
	mutation.KindCheckConstraint: msgDateOrder,
}
