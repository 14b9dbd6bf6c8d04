package keycode

const hostTableName = TableMacOS
