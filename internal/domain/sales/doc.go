// Package sales contiene el motor de agregación de ventas e inventario.
//
// Todas las funciones son puras: no hacen I/O, no guardan estado entre
// llamadas y devuelven estructuras nuevas en cada invocación, por lo que
// pueden usarse desde cualquier cantidad de goroutines a la vez.
// Los datos mal formados se degradan a cero o a cadena vacía; el paquete
// no devuelve errores.
package sales
